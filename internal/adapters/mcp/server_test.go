package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/motif/internal/protocol"
	"github.com/aretw0/motif/internal/store"
	"github.com/aretw0/motif/pkg/adapters/memory"
	"github.com/aretw0/motif/pkg/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logo := memory.NewShape("s1", "Logo")
	sceneGraph := memory.NewScene(memory.NewFrame("f1", "Intro", logo))
	host := protocol.NewHost(store.New(memory.NewStore()), sceneGraph)
	return NewServer(host)
}

func TestHandleGroupsResource(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	group := domain.NewAnimationGroup("g-1", "Logo")
	group.Keyframes = []domain.Keyframe{
		{ID: "k0", LayerID: "s1", Time: 0, Properties: domain.DefaultProperties()},
	}
	require.NoError(t, s.host.Groups().Create(ctx, group))

	contents, err := s.handleGroupsResource(ctx, mcpgo.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcpgo.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "motif://groups", text.URI)
	assert.Equal(t, "application/json", text.MIMEType)

	var groups []*domain.AnimationGroup
	require.NoError(t, json.Unmarshal([]byte(text.Text), &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "g-1", groups[0].ID)
}
