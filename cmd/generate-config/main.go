package main

import (
	"flag"
	"io"
	"os"

	"cashtable-server/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var out = flag.String("o", "", "write the config to this file instead of stdout")

func main() {
	flag.Parse()

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logrus.WithError(err).Fatal("could not create config file")
		}
		defer f.Close()

		w = f
	}

	if err := yaml.NewEncoder(w).Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}
}
