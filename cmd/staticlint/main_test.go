package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestOSExitAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), OSExitAnalyzer, "osexit")
}

func TestSentinelCompareAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), SentinelCompareAnalyzer, "sentinel")
}
