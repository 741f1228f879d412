package config

const (
	defaultStateDir          = "~/.local/share/tidy"
	defaultLogDir            = "~/.local/share/tidy/logs"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultDuplicateStrategy = "rename"
	defaultHistoryLimit      = 20

	// FallbackCategory is the catch-all bucket for unclassified extensions.
	FallbackCategory = "Other"
)

// DefaultCategories returns the built-in classification table. Declaration
// order matters: the first category claiming an extension wins.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Documents", Extensions: []string{
			".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls",
			".xlsx", ".ppt", ".pptx", ".csv", ".ods", ".odp",
		}},
		{Name: "Images", Extensions: []string{
			".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".tiff",
			".ico", ".webp", ".heic", ".raw", ".psd", ".ai",
		}},
		{Name: "Videos", Extensions: []string{
			".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm",
			".m4v", ".mpg", ".mpeg", ".3gp",
		}},
		{Name: "Audio", Extensions: []string{
			".mp3", ".wav", ".ogg", ".flac", ".aac", ".wma", ".m4a",
			".mid", ".midi",
		}},
		{Name: "Archives", Extensions: []string{
			".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".iso",
		}},
		{Name: "Code", Extensions: []string{
			".py", ".java", ".cpp", ".c", ".h", ".hpp", ".js", ".html",
			".css", ".php", ".rb", ".go", ".rs", ".swift", ".kt", ".json",
			".xml", ".sql", ".sh", ".bat", ".ps1",
		}},
		{Name: "Programs", Extensions: []string{
			".exe", ".msi", ".app", ".dmg", ".deb", ".rpm",
		}},
		{Name: FallbackCategory},
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Organize: Organize{
			DuplicateStrategy: defaultDuplicateStrategy,
		},
		History: History{
			Enabled: true,
			Limit:   defaultHistoryLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Categories: DefaultCategories(),
	}
}
