// SPDX-License-Identifier: MIT

// Command plexus exercises the shape-checked layers and the
// descriptor-driven runtime networks from the command line.
//
//	plexus demo                         static 4→6 dense layer on one sample
//	plexus run --descriptor net.yaml    forward + loss + backward on a random batch
//	plexus det --matrix "1,2;3,4"       determinant through the static engine
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("plexus failed")
		os.Exit(1)
	}
}
