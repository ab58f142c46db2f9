/*
Package config loads Store settings from a YAML file, optional .env files and
NODECONF_* environment variables, and turns them into a slog.Logger and
nodeconf options.

	cfg, err := config.Load("nodeconf.yaml", ".env")
	if err != nil {
		return err
	}
	conf, err := nodeconf.New(memtree.New(), cfg.Options(os.Stderr)...)
*/
package config
