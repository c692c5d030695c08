package cfg

import (
	"os"
	"strings"

	"github.com/Masterminds/vcsimport/command"
	"github.com/Masterminds/vcsimport/host"
	"github.com/Masterminds/vcsimport/importer"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultURLFormat is the URL format of hosts that do not set one.
const DefaultURLFormat = "https://" + host.ImportPathVar

// Config is the top-level configuration object.
type Config struct {
	// Commands names the commands import paths may resolve to, in order.
	// The default commands are used when it is empty.
	Commands []string `yaml:"commands,omitempty"`

	// Hosts are tried, in order, before the default hosts.
	Hosts HostConfigs `yaml:"hosts,omitempty"`
}

// HostConfig describes a host in the configuration file.
type HostConfig struct {
	Name    string `yaml:"name"`
	Prefix  string `yaml:"prefix,omitempty"`
	Pattern string `yaml:"pattern"`

	// Vcs is the command managing every repository of the host. When empty
	// the command is taken from the extension ending the import path.
	Vcs string `yaml:"vcs,omitempty"`

	// URL is the remote URL format, DefaultURLFormat when empty.
	URL string `yaml:"url,omitempty"`
}

// HostConfigs is a slice of HostConfig pointers
type HostConfigs []*HostConfig

// ConfigFromYaml returns an instance of Config from YAML
func ConfigFromYaml(yml []byte) (*Config, error) {
	cfg := &Config{}
	err := yaml.Unmarshal(yml, &cfg)
	return cfg, err
}

// Marshal converts a Config instance to YAML
func (c *Config) Marshal() ([]byte, error) {
	yml, err := yaml.Marshal(&c)
	if err != nil {
		return []byte{}, err
	}
	return yml, nil
}

// WriteFile writes a config.yaml file.
//
// This is a convenience function that marshals the YAML and then writes it to
// the given file. If the file exists, it will be clobbered.
func (c *Config) WriteFile(cpath string) error {
	o, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(cpath, o, 0666)
}

// ReadFile loads the configuration file at cpath. A missing file is an empty
// configuration.
func ReadFile(cpath string) (*Config, error) {
	yml, err := os.ReadFile(cpath)
	if os.IsNotExist(err) {
		return &Config{}, nil
	} else if err != nil {
		return nil, err
	}
	c, err := ConfigFromYaml(yml)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %s", cpath)
	}
	return c, nil
}

// Host converts the configuration to a host.
func (h *HostConfig) Host() (*host.Host, error) {
	if h.Name == "" {
		return nil, errors.New("host without a name")
	}
	if h.Pattern == "" {
		return nil, errors.Errorf("host %s has no pattern", h.Name)
	}

	u := h.URL
	if u == "" {
		u = DefaultURLFormat
	}
	if !strings.Contains(u, host.ImportPathVar) {
		return nil, errors.Errorf("url of host %s does not contain %s", h.Name, host.ImportPathVar)
	}

	var sel host.Selector = host.Fixed(h.Vcs)
	if h.Vcs == "" {
		sel = host.Computed(host.ExtensionCommand)
	}

	hst, err := host.Compile(h.Name, h.Prefix, h.Pattern, sel, u)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern for host %s", h.Name)
	}
	return hst, nil
}

// Importer builds an importer from the configuration: the configured hosts
// followed by the defaults, and the configured commands.
func (c *Config) Importer() (*importer.Importer, error) {
	hosts := make([]*host.Host, 0, len(c.Hosts))
	for _, hc := range c.Hosts {
		h, err := hc.Host()
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, h)
	}
	hosts = append(hosts, host.Defaults()...)

	var cmds []command.Command
	for _, n := range c.Commands {
		cmd, ok := command.Lookup(n)
		if !ok {
			return nil, errors.Errorf("unknown command %s", n)
		}
		cmds = append(cmds, cmd)
	}

	return importer.New(hosts, cmds), nil
}
