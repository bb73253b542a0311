//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/biz-manager/backend/test/integration/steps"
)

func TestAPIFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                 "biz-manager-api",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Output:   colors.Colored(os.Stdout),
			Paths:    []string{"features"},
			Tags:     os.Getenv("GODOG_TAGS"),
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("integration test suite failed")
	}
}
