package main

import (
	"errors"
	"io"
	"os"

	"github.com/function61/gokit/jsonfile"
	"github.com/function61/opstools/pkg/newmail"
)

type mailConfig struct {
	Host     string           `json:"host"`
	Settings newmail.Settings `json:"settings"`
}

type mailComposeOptions struct {
	configPath string
	host       string
	forward    string
	password   string
}

func loadMailConfig(path string) (*mailConfig, error) {
	conf := &mailConfig{
		Settings: newmail.DefaultSettings(),
	}

	if path == "" {
		return conf, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return conf, jsonfile.Unmarshal(file, conf, true)
}

func mailCompose(out io.Writer, user string, opts mailComposeOptions) error {
	conf, err := loadMailConfig(opts.configPath)
	if err != nil {
		return err
	}

	host := conf.Host
	if opts.host != "" {
		host = opts.host
	}
	if host == "" {
		return errors.New("mail server host not set: use --host or config")
	}

	password := opts.password
	if password == "" {
		password = newmail.GeneratePassword()
	}

	msg, err := newmail.Compose(newmail.Account{
		User:     user,
		Password: password,
		Host:     host,
		Forward:  opts.forward,
	}, conf.Settings)
	if err != nil {
		return err
	}

	_, err = msg.WriteTo(out)
	return err
}
