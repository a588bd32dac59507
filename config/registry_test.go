package config

import (
	"context"
	"testing"

	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/pipeline"
)

type noopNode struct{}

func (n *noopNode) Name() string        { return "noop" }
func (n *noopNode) Kind() pipeline.Kind { return pipeline.KindPostProcess }

func (n *noopNode) Process(
	_ context.Context,
	_ *core.DecisionContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	return candidates, nil
}

func TestRegisterAndValidate(t *testing.T) {
	Register("test.noop", func(_ map[string]interface{}) (pipeline.Node, error) {
		return &noopNode{}, nil
	})

	found := false
	for _, typ := range SupportedTypes() {
		if typ == "test.noop" {
			found = true
		}
	}
	if !found {
		t.Fatal("registered type missing from SupportedTypes()")
	}

	cfg := &pipeline.Config{}
	cfg.Pipeline.Nodes = []pipeline.NodeConfig{{Type: "test.noop"}}
	if err := ValidatePipelineConfig(cfg); err != nil {
		t.Errorf("ValidatePipelineConfig() error = %v", err)
	}

	cfg.Pipeline.Nodes = append(cfg.Pipeline.Nodes, pipeline.NodeConfig{Type: "test.unknown"})
	if err := ValidatePipelineConfig(cfg); err == nil {
		t.Error("expected error for unregistered node type")
	}
}

func TestDefaultFactoryBuildsRegisteredNode(t *testing.T) {
	Register("test.noop2", func(_ map[string]interface{}) (pipeline.Node, error) {
		return &noopNode{}, nil
	})

	node, err := DefaultFactory().Build("test.noop2", nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if node.Name() != "noop" {
		t.Errorf("node name = %q", node.Name())
	}
}

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := len(SupportedTypes())
	Register("", func(_ map[string]interface{}) (pipeline.Node, error) { return &noopNode{}, nil })
	Register("test.nil", nil)
	if after := len(SupportedTypes()); after != before {
		t.Errorf("registry grew from %d to %d on invalid registrations", before, after)
	}
}
