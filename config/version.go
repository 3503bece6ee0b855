package config

// 构建时通过 -ldflags 注入
var (
	Version    string = "dev"
	CommitHash string = "n/a"
)
