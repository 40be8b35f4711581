// Copyright 2024 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"os"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/ols/clog"
	_ "github.com/cayleygraph/ols/clog/glog"
	"github.com/cayleygraph/ols/cmd/ols/command"
)

func main() {
	root := command.NewRootCmd()
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	pre := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// glog reads its flags from the standard flag set
		flag.CommandLine.Parse([]string{})
		return pre(cmd, args)
	}
	if err := root.Execute(); err != nil {
		clog.Errorf("%v", err)
		os.Exit(1)
	}
}
