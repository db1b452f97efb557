package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFlowConfig() *FlowConfig {
	return &FlowConfig{
		ID:   "flow-1",
		Name: "Memory Chatbot",
		Nodes: []FlowNodeConfig{
			{ID: "chat-input", Type: "ChatInput"},
			{ID: "chat-output", Type: "ChatOutput"},
		},
		Edges: []FlowEdgeConfig{
			{Source: "chat-input", SourceHandle: "message", Target: "chat-output", TargetHandle: "input_value"},
		},
	}
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid flow config", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validFlowConfig()))
	})

	t.Run("missing required fields", func(t *testing.T) {
		cfg := validFlowConfig()
		cfg.Name = ""
		err := ValidateStruct(cfg)
		require.Error(t, err)

		var errs ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "Name", errs[0].Field)
	})

	t.Run("no nodes", func(t *testing.T) {
		cfg := validFlowConfig()
		cfg.Nodes = nil
		assert.Error(t, ValidateStruct(cfg))
	})

	t.Run("duplicate node ids", func(t *testing.T) {
		cfg := validFlowConfig()
		cfg.Nodes = append(cfg.Nodes, FlowNodeConfig{ID: "chat-input", Type: "ChatInput"})
		err := ValidateStruct(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate node ID")
	})

	t.Run("edge references unknown node", func(t *testing.T) {
		cfg := validFlowConfig()
		cfg.Edges[0].Target = "ghost"
		err := ValidateStruct(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown node")
	})
}

func TestDottedNameTag(t *testing.T) {
	tests := []struct {
		name    string
		entry   RedirectEntryConfig
		wantErr bool
	}{
		{"valid mapping", RedirectEntryConfig{Shadow: "aiexec.base.models", Canonical: "lfx.base.models"}, false},
		{"single segment", RedirectEntryConfig{Shadow: "aiexec", Canonical: "lfx"}, false},
		{"empty shadow", RedirectEntryConfig{Shadow: "", Canonical: "lfx"}, true},
		{"empty segment", RedirectEntryConfig{Shadow: "aiexec..base", Canonical: "lfx.base"}, true},
		{"trailing dot", RedirectEntryConfig{Shadow: "aiexec.base", Canonical: "lfx.base."}, true},
		{"leading dot", RedirectEntryConfig{Shadow: ".aiexec", Canonical: "lfx"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.entry)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "Name", Value: "", Message: "failed on tag 'required'"},
		{Field: "Shadow", Value: "a..b", Message: "failed on tag 'dotted_name'"},
	}
	msg := errs.Error()
	assert.Contains(t, msg, "Name")
	assert.Contains(t, msg, "Shadow")

	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
}
