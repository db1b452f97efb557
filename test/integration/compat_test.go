package compat_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitworkflows/DEV-AiEXEC/internal/adapters/repository/sqlite"
	"github.com/gitworkflows/DEV-AiEXEC/internal/components"
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/flow"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/aiexec"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/prebuilt/chatbot"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/serialization"
)

// End-to-end: legacy names resolve to live constructors, the constructed
// components assemble into a flow, and the flow round-trips through storage.
func TestLegacyNamesToStoredFlow(t *testing.T) {
	rt := aiexec.NewRuntime()

	// Resolve component constructors through their legacy aiexec names.
	v, err := rt.Attr("aiexec.components.input_output", "ChatInput")
	require.NoError(t, err)
	newChatInput, ok := v.(func() *components.ChatInput)
	require.True(t, ok, "resolved value is the live constructor")

	v, err = rt.Attr("aiexec.components.input_output", "ChatOutput")
	require.NoError(t, err)
	newChatOutput, ok := v.(func() *components.ChatOutput)
	require.True(t, ok)

	// Identity: forwarding returns the same function the canonical tree holds.
	again, err := rt.Attr("aiexec.components.input_output", "ChatInput")
	require.NoError(t, err)
	assert.Equal(t, reflect.ValueOf(newChatInput).Pointer(), reflect.ValueOf(again).Pointer())

	// Assemble a minimal flow from the resolved constructors.
	in := newChatInput()
	out := newChatOutput()
	out.Set("input_value", in.MessageResponse())

	g, err := components.Assemble("echo-flow", "Echo", &in.Component, &out.Component,
		&in.Component, &out.Component)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
}

func TestPrebuiltFlowThroughSQLite(t *testing.T) {
	ctx := context.Background()

	g, err := chatbot.Build(chatbot.MemoryChatbotConfig{ID: "memory-chatbot"})
	require.NoError(t, err)

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	store := sqlite.NewFlowStore(db, serialization.DefaultSerializer())
	require.NoError(t, store.InitSchema(ctx))

	doc, err := flow.New([]byte(`{"id":"memory-chatbot","name":"Memory Chatbot","data":{"nodes":[],"edges":[]}}`))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, doc))

	loaded, err := store.Load(ctx, "memory-chatbot")
	require.NoError(t, err)
	assert.Equal(t, g.ID, loaded.ID)
	assert.Equal(t, "Memory Chatbot", loaded.Name)
}

func TestPhysicalOverrideEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "base", "data"), 0o755))

	src := `package kbutils

// KBRootPath is where knowledge bases are stored on disk.
var KBRootPath = "/var/lib/aiexec/knowledge_bases"

func ListKnowledgeBases() []string {
	return []string{"default"}
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base", "data", "kb_utils.go"), []byte(src), 0o644))

	rt := aiexec.NewRuntime(aiexec.WithOverridesDir(dir))

	v, err := rt.Attr("aiexec.base.data.kb_utils", "KBRootPath")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/aiexec/knowledge_bases", v)

	names := rt.Introspect("aiexec.base.data.kb_utils")
	assert.Contains(t, names, "KBRootPath")
	assert.Contains(t, names, "ListKnowledgeBases")
}
