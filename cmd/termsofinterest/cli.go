// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package main

import "flag"

var (
	flagExecutionDate, flagFormatTemplate, flagTermsetAlgo string
	flagUnit1Userset, flagUnit1Termset                     string
	flagUnit2Userset, flagUnit2Termset                     string
	flagDBURI, flagConfigFile, flagLogLevel                string
)

func cliInit() {
	flag.StringVar(&flagExecutionDate, "execution-date", "", "Only process messages for this `date` (RFC3339 date, e.g. 2019-04-08); unset processes every date")
	flag.StringVar(&flagFormatTemplate, "format-template", "", "Output line template using {term} and {message_id} placeholders")
	flag.StringVar(&flagTermsetAlgo, "termset-algo", "AhoCorasick", "Matcher algorithm: `NaiveList, NaiveSet, Trie or AhoCorasick`")
	flag.StringVar(&flagUnit1Userset, "unit1-userset", "", "Path to unit 1's userset file")
	flag.StringVar(&flagUnit1Termset, "unit1-termset", "", "Path to unit 1's termset file")
	flag.StringVar(&flagUnit2Userset, "unit2-userset", "", "Path to unit 2's userset file")
	flag.StringVar(&flagUnit2Termset, "unit2-termset", "", "Path to unit 2's termset file")
	flag.StringVar(&flagDBURI, "db-uri", "", "Path to a sqlite3 database file for the relational sink; empty disables it")
	flag.StringVar(&flagConfigFile, "config", "", "Optional `config.json` overriding the defaults above (CLI flags still win)")
	flag.StringVar(&flagLogLevel, "loglevel", "warn", "Logging level: `debug, info, warn, err, fatal`")
	flag.Parse()
}
