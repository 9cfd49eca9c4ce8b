package manifest

// TSConfig is the generated tsconfig.json.
type TSConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
}

type CompilerOptions struct {
	Target                     string   `json:"target"`
	UseDefineForClassFields    bool     `json:"useDefineForClassFields"`
	Lib                        []string `json:"lib"`
	Module                     string   `json:"module"`
	SkipLibCheck               bool     `json:"skipLibCheck"`
	ModuleResolution           string   `json:"moduleResolution"`
	AllowImportingTsExtensions bool     `json:"allowImportingTsExtensions"`
	ResolveJSONModule          bool     `json:"resolveJsonModule"`
	IsolatedModules            bool     `json:"isolatedModules"`
	NoEmit                     bool     `json:"noEmit"`
	JSX                        string   `json:"jsx"`
	JSXImportSource            string   `json:"jsxImportSource"`
	Strict                     bool     `json:"strict"`
	NoUnusedLocals             bool     `json:"noUnusedLocals"`
	NoUnusedParameters         bool     `json:"noUnusedParameters"`
	NoFallthroughCasesInSwitch bool     `json:"noFallthroughCasesInSwitch"`
}

// NewTSConfig returns the fixed compiler configuration.
func NewTSConfig() *TSConfig {
	return &TSConfig{
		CompilerOptions: CompilerOptions{
			Target:                     "ES2020",
			UseDefineForClassFields:    true,
			Lib:                        []string{"ES2020", "DOM", "DOM.Iterable"},
			Module:                     "ESNext",
			SkipLibCheck:               true,
			ModuleResolution:           "bundler",
			AllowImportingTsExtensions: true,
			ResolveJSONModule:          true,
			IsolatedModules:            true,
			NoEmit:                     true,
			JSX:                        "preserve",
			JSXImportSource:            PkgCore,
			Strict:                     true,
			NoUnusedLocals:             true,
			NoUnusedParameters:         true,
			NoFallthroughCasesInSwitch: true,
		},
		Include: []string{"src/**/*"},
	}
}
