package greeter

// Settings is the effective runtime configuration of the service
type Settings struct {
	Listen      string     `json:"listen" yaml:"listen"`
	Port        int        `json:"port" yaml:"port"`
	PortSource  PortSource `json:"portSource" yaml:"portSource"`
	ContentType string     `json:"contentType" yaml:"contentType"`
	Body        string     `json:"body" yaml:"body"`
	Version     string     `json:"version" yaml:"version"`
}

// NewSettings describes a server configured with opt
func NewSettings(opt Options, source PortSource, version string) Settings {
	return Settings{
		Listen:      opt.Addr(),
		Port:        opt.Port,
		PortSource:  source,
		ContentType: ContentType,
		Body:        Body,
		Version:     version,
	}
}
