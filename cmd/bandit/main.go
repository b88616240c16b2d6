// Command bandit runs multi-armed bandit experiments and plots the
// aggregated learning curves.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

func main() {
	// glog reads its flags from flag.CommandLine, which cobra parses for us.
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}
