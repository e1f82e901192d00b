/*
Copyright 2026 The Roundcheck Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"flag"
	"os"

	"github.com/roundcheck/roundcheck/go/cmd/roundcheck/cli"
	"github.com/roundcheck/roundcheck/go/log"
)

func main() {
	defer log.Flush()

	// Pull the glog flags registered on the global flag set into cobra.
	cli.Main.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// Parse an empty argument list first so glog stops complaining
	// about logging before flag.Parse.
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	if err := cli.Main.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
