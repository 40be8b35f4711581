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

// Package command implements the ols command line tool.
package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/ols/clog"
	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/ols/cache"
)

const (
	KeyProtocol     = "ols.protocol"
	KeyHost         = "ols.host"
	KeyTimeout      = "ols.timeout"
	KeyOntologyPage = "ols.page.ontology"
	KeyTermPage     = "ols.page.term"
	KeySearchPage   = "ols.page.search"
	KeyQueryFields  = "ols.search.query_fields"
	KeyFieldList    = "ols.search.field_list"
	KeyHTTPProxy    = "ols.proxy.http"
	KeyHTTPSProxy   = "ols.proxy.https"
	KeyNoProxy      = "ols.proxy.no"

	KeyCacheCapacity = "ols.cache.capacity"
)

const (
	flagConfig   = "config"
	flagOntology = "ontology"
	flagOutput   = "output"
)

// Filled in by `go build ldflags="-X github.com/cayleygraph/ols/cmd/ols/command.Version=ver"`.
var (
	Version   string
	BuildDate string
)

// env carries the configuration shared by all subcommands of one root.
type env struct {
	v *viper.Viper
}

func (e *env) config() *ols.Config {
	cfg := ols.DefaultConfig()
	cfg.Protocol = e.v.GetString(KeyProtocol)
	cfg.Host = e.v.GetString(KeyHost)
	cfg.Timeout = e.v.GetDuration(KeyTimeout)
	cfg.OntologyPageSize = e.v.GetInt(KeyOntologyPage)
	cfg.TermPageSize = e.v.GetInt(KeyTermPage)
	cfg.SearchPageSize = e.v.GetInt(KeySearchPage)
	if fields := e.v.GetStringSlice(KeyQueryFields); len(fields) > 0 {
		cfg.QueryFields = toFields(fields)
	}
	if fields := e.v.GetStringSlice(KeyFieldList); len(fields) > 0 {
		cfg.FieldList = toFields(fields)
	}
	cfg.HTTPProxy = e.v.GetString(KeyHTTPProxy)
	cfg.HTTPSProxy = e.v.GetString(KeyHTTPSProxy)
	cfg.NoProxy = e.v.GetString(KeyNoProxy)
	return cfg
}

func toFields(s []string) []ols.Field {
	out := make([]ols.Field, 0, len(s))
	for _, f := range s {
		out = append(out, ols.Field(strings.TrimSpace(f)))
	}
	return out
}

func (e *env) client() *ols.Client {
	cfg := e.config()
	if clog.V(1) {
		clog.Infof("using lookup service at %s", cfg.BaseURL())
	}
	return ols.New(cfg)
}

func (e *env) cache(cli *ols.Client) *cache.Existence {
	return cache.New(cli, e.v.GetInt(KeyCacheCapacity))
}

func (e *env) setDefaults() {
	def := ols.DefaultConfig()
	e.v.SetDefault(KeyProtocol, def.Protocol)
	e.v.SetDefault(KeyHost, def.Host)
	e.v.SetDefault(KeyTimeout, def.Timeout)
	e.v.SetDefault(KeyOntologyPage, def.OntologyPageSize)
	e.v.SetDefault(KeyTermPage, def.TermPageSize)
	e.v.SetDefault(KeySearchPage, def.SearchPageSize)
	e.v.SetDefault(KeyCacheCapacity, cache.DefaultCapacity)
}

func (e *env) readConfig(cmd *cobra.Command) error {
	file, _ := cmd.Flags().GetString(flagConfig)
	if file == "" {
		return nil
	}
	e.v.SetConfigFile(file)
	if err := e.v.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read config file %q: %v", file, err)
	}
	clog.Infof("using config file: %s", e.v.ConfigFileUsed())
	return nil
}

// NewRootCmd creates the ols command with all its subcommands.
func NewRootCmd() *cobra.Command {
	e := &env{v: viper.New()}
	e.setDefaults()
	// Keys map to environment variables such as OLS_HOST and OLS_PAGE_TERM.
	e.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	e.v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "ols",
		Short:        "Query the Ontology Lookup Service.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.readConfig(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "path to a configuration file (JSON, YAML or TOML)")
	pf.String("protocol", "", "protocol used to reach the service")
	pf.String("host", "", "host and base path of the service")
	pf.Duration("timeout", 0, "timeout of a single HTTP request")
	pf.Int("cache-capacity", 0, "number of existing terms remembered by the exists command")
	pf.StringP(flagOutput, "o", "text", `output format ("text" or "json")`)
	e.v.BindPFlag(KeyProtocol, pf.Lookup("protocol"))
	e.v.BindPFlag(KeyHost, pf.Lookup("host"))
	e.v.BindPFlag(KeyTimeout, pf.Lookup("timeout"))
	e.v.BindPFlag(KeyCacheCapacity, pf.Lookup("cache-capacity"))

	root.AddCommand(
		newTermCmd(e),
		newHopCmd(e, ols.Children),
		newHopCmd(e, ols.Parents),
		newSearchCmd(e),
		newOntologiesCmd(e),
		newOntologyCmd(e),
		newRootsCmd(e),
		newExistsCmd(e),
		newMetadataCmd(e),
		newExportCmd(e),
		newVersionCmd(),
	)
	return root
}

func registerOntologyFlag(cmd *cobra.Command, required bool) {
	cmd.Flags().StringP(flagOntology, "O", "", "ontology short name, e.g. efo")
	if required {
		cmd.MarkFlagRequired(flagOntology)
	}
}
