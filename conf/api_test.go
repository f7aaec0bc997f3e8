// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfMapFromStrings(t *testing.T) {
	assert := assert.New(t)

	confMap, err := MakeConfMapFromStrings([]string{
		"RBTree.MaxNodes=1000",
		"RBTree.ValidateOnInsert : yes",
		"Logging.TraceLevelLogging=rbtree, elements",
		"Logging.DebugLevelLogging=",
		"Logging.LogFilePath=/dev/null",
		"Stats.Interval=1s",
	})
	assert.Nil(err)

	maxNodes, err := confMap.FetchOptionValueUint64("RBTree", "MaxNodes")
	assert.Nil(err)
	assert.Equal(uint64(1000), maxNodes)

	validateOnInsert, err := confMap.FetchOptionValueBool("RBTree", "ValidateOnInsert")
	assert.Nil(err)
	assert.True(validateOnInsert)

	traceList, err := confMap.FetchOptionValueStringSlice("Logging", "TraceLevelLogging")
	assert.Nil(err)
	assert.Equal([]string{"rbtree", "elements"}, traceList)

	debugList, err := confMap.FetchOptionValueStringSlice("Logging", "DebugLevelLogging")
	assert.Nil(err)
	assert.Equal(0, len(debugList))

	logFilePath, err := confMap.FetchOptionValueString("Logging", "LogFilePath")
	assert.Nil(err)
	assert.Equal("/dev/null", logFilePath)

	interval, err := confMap.FetchOptionValueDuration("Stats", "Interval")
	assert.Nil(err)
	assert.Equal(time.Second, interval)

	// Multi-valued option fetched as a single string
	_, err = confMap.FetchOptionValueString("Logging", "TraceLevelLogging")
	assert.NotNil(err)

	// Missing section and missing option
	_, err = confMap.FetchOptionValueUint64("Missing", "MaxNodes")
	assert.NotNil(err)
	_, err = confMap.FetchOptionValueUint64("RBTree", "Missing")
	assert.NotNil(err)

	// Bad conversions
	err = confMap.UpdateFromString("RBTree.MaxNodes=lots")
	assert.Nil(err)
	_, err = confMap.FetchOptionValueUint64("RBTree", "MaxNodes")
	assert.NotNil(err)
	err = confMap.UpdateFromString("RBTree.ValidateOnInsert=maybe")
	assert.Nil(err)
	_, err = confMap.FetchOptionValueBool("RBTree", "ValidateOnInsert")
	assert.NotNil(err)
	err = confMap.UpdateFromString("Stats.Interval=-1s")
	assert.Nil(err)
	_, err = confMap.FetchOptionValueDuration("Stats", "Interval")
	assert.NotNil(err)

	// Malformed strings
	_, err = MakeConfMapFromStrings([]string{"   "})
	assert.NotNil(err)
	_, err = MakeConfMapFromStrings([]string{"NoDotHere=1"})
	assert.NotNil(err)
}

func TestConfMapFromFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	includedPath := filepath.Join(dir, "included.conf")
	err := os.WriteFile(includedPath, []byte("[Logging]\nLogToConsole: false\n"), 0644)
	assert.Nil(err)

	mainPath := filepath.Join(dir, "main.conf")
	err = os.WriteFile(mainPath, []byte(
		"# tree limits\n"+
			"[RBTree]\n"+
			"MaxNodes:         64   ; small\n"+
			"ValidateOnInsert = true\n"+
			"\n"+
			".include included.conf\n"+
			"\n"+
			"[Logging]\n"+
			"TraceLevelLogging: rbtree\n"), 0644)
	assert.Nil(err)

	confMap, err := MakeConfMapFromFile(mainPath)
	assert.Nil(err)

	maxNodes, err := confMap.FetchOptionValueUint64("RBTree", "MaxNodes")
	assert.Nil(err)
	assert.Equal(uint64(64), maxNodes)

	logToConsole, err := confMap.FetchOptionValueBool("Logging", "LogToConsole")
	assert.Nil(err)
	assert.False(logToConsole)

	traceList, err := confMap.FetchOptionValueStringSlice("Logging", "TraceLevelLogging")
	assert.Nil(err)
	assert.Equal([]string{"rbtree"}, traceList)

	badPath := filepath.Join(dir, "bad.conf")
	err = os.WriteFile(badPath, []byte("MaxNodes: 1\n"), 0644)
	assert.Nil(err)
	_, err = MakeConfMapFromFile(badPath)
	assert.NotNil(err)

	_, err = MakeConfMapFromFile(filepath.Join(dir, "does-not-exist.conf"))
	assert.NotNil(err)
}
