// Package prebuilt provides opinionated, ready-made flow templates
// ("prebuilts") such as the memory chatbot starter. Each prebuilt exposes
// a simple configuration and returns a wired *graph.Graph that an
// execution engine can run or a frontend can render.
package prebuilt
