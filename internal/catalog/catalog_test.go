package catalog

import "testing"

func TestBaselineContainsCoreDefinitions(t *testing.T) {
	t.Parallel()

	base := Baseline()
	names := make(map[string]bool)
	for _, component := range base.Components {
		names[component.Name] = true
	}
	if !names["Transform"] || !names["Velocity"] {
		t.Fatalf("baseline components = %v, want Transform and Velocity", names)
	}
	if len(base.Systems) != 1 || base.Systems[0].Name != "movement" {
		t.Fatalf("baseline systems = %v, want movement", base.Systems)
	}
}

func TestDefinitionsForKnownTag(t *testing.T) {
	t.Parallel()

	c := New()
	contribution, ok := c.DefinitionsFor("physics")
	if !ok {
		t.Fatal("physics must be a known tag")
	}
	var rigid, collider bool
	for _, component := range contribution.Components {
		switch component.Name {
		case "RigidBody":
			rigid = true
		case "Collider":
			collider = true
		}
	}
	if !rigid || !collider {
		t.Fatalf("physics contribution missing body components: %+v", contribution.Components)
	}
}

func TestDefinitionsForUnknownTag(t *testing.T) {
	t.Parallel()

	c := New()
	contribution, ok := c.DefinitionsFor("time_travel")
	if ok {
		t.Fatal("unknown tag must report not found")
	}
	if len(contribution.Components)+len(contribution.Systems)+len(contribution.Resources) != 0 {
		t.Fatalf("unknown tag must contribute nothing, got %+v", contribution)
	}
}

func TestEveryDefinitionValidates(t *testing.T) {
	t.Parallel()

	c := New()
	check := func(tag string, contribution Contribution) {
		for _, component := range contribution.Components {
			if err := component.Validate(); err != nil {
				t.Fatalf("tag %s component %s: %v", tag, component.Name, err)
			}
		}
		for _, system := range contribution.Systems {
			if err := system.Validate(); err != nil {
				t.Fatalf("tag %s system %s: %v", tag, system.Name, err)
			}
		}
		for _, resource := range contribution.Resources {
			if err := resource.Validate(); err != nil {
				t.Fatalf("tag %s resource %s: %v", tag, resource.Name, err)
			}
		}
	}
	check("baseline", Baseline())
	for tag, contribution := range c.features {
		check(tag, contribution)
	}
}

func TestStrategyTable(t *testing.T) {
	t.Parallel()

	c := New()
	cases := []struct {
		tag    string
		plugin string
		note   string
	}{
		{"spatial_partitioning", "SpatialPartitioningPlugin", ""},
		{"entity_batching", "", "Entity batching enabled"},
		{"component_packing", "", "Dense component storage"},
		{"memory_pooling", "MemoryPoolPlugin", ""},
		{"query_optimization", "", "Query batching enabled"},
	}
	for _, tc := range cases {
		strategy, ok := c.StrategyFor(tc.tag)
		if !ok {
			t.Fatalf("strategy %s must be known", tc.tag)
		}
		if strategy.Plugin != tc.plugin || strategy.Note != tc.note {
			t.Fatalf("strategy %s = %+v, want plugin %q note %q", tc.tag, strategy, tc.plugin, tc.note)
		}
	}
}

func TestRecognizedCoversAllCategories(t *testing.T) {
	t.Parallel()

	c := New()
	for _, tag := range []string{"physics", "entity_batching", TagSystemParallelization} {
		if !c.Recognized(tag) {
			t.Fatalf("tag %s must be recognized", tag)
		}
	}
	if c.Recognized("time_travel") {
		t.Fatal("time_travel must not be recognized")
	}
}
