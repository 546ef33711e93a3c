// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedmap/configuration"
	"github.com/bitmark-inc/orderedmap/fault"
)

type entry struct {
	Key  int    `gluamapper:"key"`
	Name string `gluamapper:"name"`
}

type testConfiguration struct {
	Title   string            `gluamapper:"title"`
	Count   int               `gluamapper:"count"`
	Entries []entry           `gluamapper:"entries"`
	Levels  map[string]string `gluamapper:"levels"`
	Self    string            `gluamapper:"self"`
}

const testConfig = `
local M = {}
M.title = "foods by hunger value"
M.count = 3 + 4
M.entries = {
   { key = 10, name = "apple" },
   { key = 25, name = "bread" },
}
M.levels = { DEFAULT = "info", main = "debug" }
M.self = arg[0]
return M
`

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParse(t *testing.T) {
	fileName, cleanup := writeFile(t, testConfig)
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	assert.Equal(t, "foods by hunger value", config.Title)
	assert.Equal(t, 7, config.Count, "lua expression evaluated")
	assert.Equal(t, []entry{{10, "apple"}, {25, "bread"}}, config.Entries)
	assert.Equal(t, "debug", config.Levels["main"])
	assert.Equal(t, fileName, config.Self, "arg[0] is the file name")
}

func TestParseErrors(t *testing.T) {
	fileName, cleanup := writeFile(t, "return 42\n")
	defer cleanup()

	config := testConfiguration{}
	assert.Equal(t, fault.ErrConfigurationNotTable, configuration.ParseConfigurationFile(fileName, &config))
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, config))
	assert.Equal(t, fault.ErrNotFoundConfigFile, configuration.ParseConfigurationFile(fileName+".missing", &config))

	badFile, cleanupBad := writeFile(t, "return {\n")
	defer cleanupBad()
	assert.NotNil(t, configuration.ParseConfigurationFile(badFile, &config), "syntax error")
}
