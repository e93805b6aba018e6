package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"policy": map[string]any{
			"maxClassCapacity": 20,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "POLICY_MAXCLASSCAPACITY", want: "policy.maxClassCapacity"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestPolicyConfig_ApplyDefaults(t *testing.T) {
	var p PolicyConfig
	p.applyDefaults()

	if p.MaxClassCapacity != defaultMaxClassCapacity {
		t.Fatalf("MaxClassCapacity = %d, want %d", p.MaxClassCapacity, defaultMaxClassCapacity)
	}
	if p.TrainerOverlapLimit != defaultTrainerOverlapLimit {
		t.Fatalf("TrainerOverlapLimit = %d, want %d", p.TrainerOverlapLimit, defaultTrainerOverlapLimit)
	}
	if p.SaunaSurcharge != defaultSaunaSurcharge {
		t.Fatalf("SaunaSurcharge = %d, want %d", p.SaunaSurcharge, defaultSaunaSurcharge)
	}

	configured := PolicyConfig{MaxClassCapacity: 30, TrainerOverlapLimit: 10, SaunaSurcharge: 40}
	configured.applyDefaults()
	if configured.MaxClassCapacity != 30 || configured.TrainerOverlapLimit != 10 || configured.SaunaSurcharge != 40 {
		t.Fatalf("applyDefaults overwrote configured values: %+v", configured)
	}
}
