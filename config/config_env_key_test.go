package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"catalog": map[string]any{
			"baseUrl":        "http://localhost:8081",
			"requestTimeout": "15s",
		},
		"env": map[string]any{
			"serviceName": "souq",
		},
		"http": map[string]any{
			"port": 8080,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "CATALOG_BASEURL", want: "catalog.baseUrl"},
		{envKey: "CATALOG_REQUESTTIMEOUT", want: "catalog.requestTimeout"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "HTTP_PORT", want: "http.port"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
