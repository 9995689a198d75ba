package matching

// DefaultProfiles returns the built-in resume taxonomy, used when the
// configuration carries no profiles section. The declaration order of the
// profiles doubles as the tie-break priority.
func DefaultProfiles() []ProfileConfig {
	return []ProfileConfig{
		{
			Name: "Resume A",
			Concepts: map[string][]string{
				"platform_infrastructure": {
					"platform infrastructure", "system architecture", "infrastructure modernization",
					"ci/cd", "microservices", "infrastructure as code", "cloud infrastructure",
					"kubernetes", "terraform", "api design", "api integration",
				},
				"data_platforms": {
					"data platform", "databricks", "data mart", "schema documentation",
					"real-time dashboards", "spark",
				},
				"api_strategy": {
					"rest api", "graphql", "api-first", "integration strategy",
				},
				"observability": {
					"metrics", "prometheus", "grafana", "logging", "instrumentation",
					"sla", "monitoring", "alerts",
				},
			},
		},
		{
			Name: "Resume B",
			Concepts: map[string][]string{
				"developer_tools": {
					"developer productivity", "developer experience", "internal developer platforms",
					"ide integrations", "build tooling", "test frameworks", "release velocity",
					"dev workflow", "platform reliability",
				},
				"observability": {
					"observability", "monitoring", "tracing", "logging", "dashboards",
					"metrics", "alerts", "incident resolution", "pendo",
				},
				"ci_cd": {
					"ci/cd", "testing pipeline", "integration testing", "automated testing",
					"build system", "release stability",
				},
			},
		},
		{
			Name: "Resume C",
			Concepts: map[string][]string{
				"billing_platform": {
					"billing platform", "monetization", "usage-based billing", "quote to cash",
					"payments platform", "invoicing", "chargeback", "reconciliation",
					"billing pipeline", "financial workflows",
				},
				"revenue_metrics": {
					"arr", "mrr", "revenue integrity", "billing metrics", "pricing logic",
					"financial sla",
				},
				"automation": {
					"workflow automation", "billing automation", "api-driven billing",
					"payment processing",
				},
			},
		},
		{
			Name: "Resume D",
			Concepts: map[string][]string{
				"internal_tools": {
					"internal tools", "workflow tools", "productivity platforms",
					"collaboration tooling", "work management", "internal systems",
				},
				"self_serve": {
					"self-serve", "adoption metrics", "kpi dashboards", "usability",
					"internal usage", "platform adoption",
				},
				"developer_experience": {
					"developer efficiency", "internal developer experience",
					"tooling for engineers", "efficiency tooling",
				},
			},
		},
	}
}
