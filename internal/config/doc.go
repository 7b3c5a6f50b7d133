// Package config loads viewer settings from YAML or TOML files and provides
// named starting views.
//
//	cfg, err := config.Load("mandelview.yaml")
//	if err != nil {
//		return err
//	}
//	view := cfg.InitialView()
//
// Unset fields keep the values from [DefaultConfig].
package config
