package version

const (
	AppName    = "ffinfo"
	AppVersion = "0.2.0"
)
