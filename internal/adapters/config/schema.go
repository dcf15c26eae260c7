package config

// Filenames lists the config file names searched for, in order of preference.
var Filenames = []string{"shortstr.yaml", "shortstr.yml", "shortstr.toml"}

// format identifies the syntax of a config file by its extension.
type format int

const (
	formatUnknown format = iota
	formatYAML
	formatTOML
)

func formatOf(ext string) format {
	switch ext {
	case ".yaml", ".yml":
		return formatYAML
	case ".toml":
		return formatTOML
	default:
		return formatUnknown
	}
}
