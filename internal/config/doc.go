// Package config manages user-level settings stored at ~/.natlink/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default platform scope applied when --platforms is not given.
package config
