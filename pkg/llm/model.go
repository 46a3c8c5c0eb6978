package llm

import "strings"

const modelSeparator = "/"

// ResolveModelID expands an alias into the identifier sent on the wire.
// Aliases already in provider/model form pass through. Otherwise the
// alias's ModelConfig supplies the name and an optional provider prefix,
// which routing gateways expect.
func ResolveModelID(alias string, cfg ModelConfig) string {
	model := strings.TrimSpace(alias)
	if strings.Contains(model, modelSeparator) {
		return model
	}

	name := strings.TrimSpace(cfg.ModelName)
	if name == "" {
		name = model
	}

	provider := strings.TrimSpace(cfg.Provider)
	if provider == "" || strings.Contains(name, modelSeparator) {
		return name
	}
	return provider + modelSeparator + name
}

// ParseModelID splits provider/model. A bare name has no provider.
func ParseModelID(model string) (provider, name string) {
	parts := strings.SplitN(model, modelSeparator, 2)
	if len(parts) != 2 {
		return "", model
	}
	return parts[0], parts[1]
}

// resolveModel looks up alias (or the default model when alias is blank)
// and returns its wire identifier with the alias settings.
func (c *Config) resolveModel(alias string) (string, ModelConfig) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		alias = c.DefaultModel
	}
	modelCfg, ok := c.Model(alias)
	if !ok {
		modelCfg = ModelConfig{ModelName: alias}
	}
	return ResolveModelID(alias, modelCfg), modelCfg
}
