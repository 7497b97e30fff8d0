package catalog

import "github.com/louisbranch/gameforge/internal/blueprint"

// Baseline returns the definitions every project includes regardless of
// feature tags: transform and velocity components, the movement system, and
// the global game-state and metrics resources.
func Baseline() Contribution {
	return Contribution{
		Components: []blueprint.ComponentDefinition{
			{
				Name: "Transform",
				Fields: []blueprint.Field{
					{Name: "position", Type: "Vec3"},
					{Name: "rotation", Type: "Quat"},
					{Name: "scale", Type: "Vec3"},
				},
				Traits: []string{"Component", "Debug"},
			},
			{
				Name: "Velocity",
				Fields: []blueprint.Field{
					{Name: "linear", Type: "Vec3"},
					{Name: "angular", Type: "Vec3"},
				},
				Traits: []string{"Component", "Debug", "Default"},
			},
		},
		Systems: []blueprint.SystemDefinition{
			{
				Name: "movement",
				Queries: []blueprint.QueryRef{
					{Access: blueprint.AccessReadWrite, Component: "Transform"},
					{Access: blueprint.AccessRead, Component: "Velocity"},
				},
				Resources: []string{"Time"},
			},
		},
		Resources: []blueprint.ResourceDefinition{
			{
				Name: "GameState",
				Fields: []blueprint.Field{
					{Name: "current_level", Type: "u32"},
					{Name: "score", Type: "u64"},
				},
				Traits: []string{"Resource", "Debug", "Default"},
			},
			{
				Name: "PerformanceMetrics",
				Fields: []blueprint.Field{
					{Name: "fps", Type: "f32"},
					{Name: "entity_count", Type: "usize"},
					{Name: "memory_usage", Type: "u64"},
				},
				Traits: []string{"Resource", "Debug", "Default"},
			},
		},
	}
}

func featureTable() map[string]Contribution {
	return map[string]Contribution{
		"health_system": {
			Components: []blueprint.ComponentDefinition{
				{
					Name: "Health",
					Fields: []blueprint.Field{
						{Name: "current", Type: "f32"},
						{Name: "max", Type: "f32"},
						{Name: "regeneration_rate", Type: "f32"},
					},
					Traits: []string{"Component", "Debug"},
				},
			},
		},
		"combat_system": {
			Components: []blueprint.ComponentDefinition{
				{
					Name: "Health",
					Fields: []blueprint.Field{
						{Name: "current", Type: "f32"},
						{Name: "max", Type: "f32"},
						{Name: "regeneration_rate", Type: "f32"},
					},
					Traits: []string{"Component", "Debug"},
				},
			},
			Systems: []blueprint.SystemDefinition{
				{
					Name: "combat",
					Queries: []blueprint.QueryRef{
						{Access: blueprint.AccessReadWrite, Component: "Health"},
						{Access: blueprint.AccessRead, Component: "Transform"},
					},
					Resources: []string{"Time", "CombatEvents"},
					Parallel:  true,
				},
			},
			Resources: []blueprint.ResourceDefinition{
				{
					Name: "CombatEvents",
					Fields: []blueprint.Field{
						{Name: "pending", Type: "Vec<CombatEvent>"},
					},
					Traits: []string{"Resource", "Debug", "Default"},
				},
			},
		},
		"resource_management": {
			Components: []blueprint.ComponentDefinition{
				{
					Name: "ResourceStorage",
					Fields: []blueprint.Field{
						{Name: "resources", Type: "HashMap<String, f32>"},
						{Name: "capacity", Type: "f32"},
					},
					Traits: []string{"Component", "Debug"},
				},
			},
		},
		"resource_collection": {
			Components: []blueprint.ComponentDefinition{
				{
					Name: "ResourceStorage",
					Fields: []blueprint.Field{
						{Name: "resources", Type: "HashMap<String, f32>"},
						{Name: "capacity", Type: "f32"},
					},
					Traits: []string{"Component", "Debug"},
				},
			},
			Systems: []blueprint.SystemDefinition{
				{
					Name: "resource_collection",
					Queries: []blueprint.QueryRef{
						{Access: blueprint.AccessReadWrite, Component: "ResourceStorage"},
						{Access: blueprint.AccessRead, Component: "Transform"},
					},
					Resources: []string{"GlobalResources"},
				},
			},
			Resources: []blueprint.ResourceDefinition{
				{
					Name: "GlobalResources",
					Fields: []blueprint.Field{
						{Name: "stockpile", Type: "HashMap<String, f32>"},
					},
					Traits: []string{"Resource", "Debug", "Default"},
				},
			},
		},
		"physics": {
			Components: []blueprint.ComponentDefinition{
				{
					Name: "RigidBody",
					Fields: []blueprint.Field{
						{Name: "mass", Type: "f32"},
						{Name: "drag", Type: "f32"},
					},
					Traits: []string{"Component", "Debug"},
				},
				{
					Name: "Collider",
					Fields: []blueprint.Field{
						{Name: "half_extents", Type: "Vec3"},
					},
					Traits: []string{"Component", "Debug"},
				},
			},
			Systems: []blueprint.SystemDefinition{
				{
					Name: "physics",
					Queries: []blueprint.QueryRef{
						{Access: blueprint.AccessReadWrite, Component: "Velocity"},
						{Access: blueprint.AccessRead, Component: "RigidBody"},
						{Access: blueprint.AccessRead, Component: "Collider"},
					},
					Resources: []string{"Time"},
				},
			},
		},
		"ai": {
			Components: []blueprint.ComponentDefinition{
				{
					Name: "AIController",
					Fields: []blueprint.Field{
						{Name: "behavior", Type: "String"},
					},
					Traits: []string{"Component", "Debug"},
				},
				{
					Name: "NavigationTarget",
					Fields: []blueprint.Field{
						{Name: "position", Type: "Vec3"},
					},
					Traits: []string{"Component", "Debug"},
				},
			},
			Systems: []blueprint.SystemDefinition{
				{
					Name: "ai",
					Queries: []blueprint.QueryRef{
						{Access: blueprint.AccessReadWrite, Component: "AIController"},
						{Access: blueprint.AccessRead, Component: "Transform"},
					},
					Resources: []string{"Time"},
				},
			},
		},
		"audio": {
			Systems: []blueprint.SystemDefinition{
				{
					Name: "audio",
					Queries: []blueprint.QueryRef{
						{Access: blueprint.AccessRead, Component: "Transform"},
					},
					Resources: []string{"AudioOutput"},
				},
			},
			Resources: []blueprint.ResourceDefinition{
				{
					Name: "AudioOutput",
					Fields: []blueprint.Field{
						{Name: "master_volume", Type: "f32"},
					},
					Traits: []string{"Resource", "Debug", "Default"},
				},
			},
		},
	}
}

func strategyTable() map[string]Strategy {
	return map[string]Strategy{
		"spatial_partitioning": {Plugin: "SpatialPartitioningPlugin"},
		"entity_batching":      {Note: "Entity batching enabled"},
		"component_packing":    {Note: "Dense component storage"},
		"memory_pooling":       {Plugin: "MemoryPoolPlugin"},
		"query_optimization":   {Note: "Query batching enabled"},
	}
}

// sequentialOnlySystems lists systems whose bodies mutate shared global
// resources and therefore never render a parallel iteration block.
func sequentialOnlySystems() map[string]bool {
	return map[string]bool{
		"resource_collection": true,
		"audio":               true,
	}
}
