// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
)

const testConfiguration = `
local M = {}
M.data_directory = "."
M.title = "foods by hunger value"
M.entries = {
   { key = 5, name = "apple", detail = "fruit" },
   { key = 40, name = "stew" },
}
M.logging = {
   size = 4096,
   levels = { main = "info" },
}
return M
`

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "ranking")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "ranking.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	absDir, _ := filepath.Abs(dir)
	assert.Equal(t, filepath.Clean(absDir), c.DataDirectory, "data directory")
	assert.Equal(t, "foods by hunger value", c.Title)
	assert.Equal(t, []Entry{{5, "apple", "fruit"}, {40, "stew", ""}}, c.Entries)

	assert.Equal(t, filepath.Join(absDir, defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "default log file")
	assert.Equal(t, "info", c.Logging.Levels["main"])
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "default level kept")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, fileName := writeConfiguration(t, "return { title = \"no directory\" }\n")
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "missing data directory")

	dir2, fileName2 := writeConfiguration(t, "return { data_directory = \".\", logging = { file = \"sub/x.log\" } }\n")
	defer os.RemoveAll(dir2)

	_, err = getConfiguration(fileName2)
	assert.NotNil(t, err, "log file with a path")
}
