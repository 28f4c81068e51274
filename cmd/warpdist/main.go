// Command warpdist computes Dynamic Time Warping distances between numeric
// sequences given on the command line or in a YAML sequence file.
package main

import (
	"github.com/sirupsen/logrus"
)

func main() {
	if err := NewCLI().Execute(); err != nil {
		logrus.Fatal(err)
	}
}
