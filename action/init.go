package action

import (
	gpath "github.com/Masterminds/vcsimport/path"
)

// configFile is the configuration file actions read. Empty selects the one
// in the home directory.
var configFile string

// Init initializes the action subsystem for handling one or more subsequent
// actions.
func Init(config, home string) {
	if home != "" {
		gpath.SetHome(home)
	}
	configFile = config
}

func configPath() string {
	if configFile != "" {
		return configFile
	}
	return gpath.ConfigFile()
}
