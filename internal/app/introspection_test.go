package app

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var report = introspection.Report{
	Configs: []introspection.ConfigAccess{
		{
			Key:         "HTTP_PORT",
			UsedDefault: true,
		},
		{
			Key: "USERS_API_BASE_URL",
		},
	},
}

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	err := introspector.Introspect(context.Background(), report)
	require.NoError(t, err)
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	var buf bytes.Buffer
	depend.Register(log.New(&buf, "", 0))
	t.Cleanup(depend.ClearContainer)

	err := ReportLoggerIntrospector{}.Introspect(context.Background(), report)
	require.NoError(t, err)

	assert.Equal(t,
		"ReportLoggerIntrospector: config HTTP_PORT (default)\n"+
			"ReportLoggerIntrospector: config USERS_API_BASE_URL (provided)\n",
		buf.String(),
	)
}
