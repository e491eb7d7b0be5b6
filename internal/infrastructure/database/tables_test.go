package database

import (
	"testing"

	appconfig "repair_intake/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDefinitions(t *testing.T) {
	defs := TableDefinitions(appconfig.Tables{
		Services: "svc",
		Slots:    "slots",
		Requests: "reqs",
		Payments: "pays",
	})
	require.Len(t, defs, 4)

	byName := map[string]int{}
	for i, d := range defs {
		byName[aws.ToString(d.TableName)] = i
	}
	require.Contains(t, byName, "reqs")

	reqs := defs[byName["reqs"]]
	declared := map[string]bool{}
	for _, a := range reqs.AttributeDefinitions {
		declared[aws.ToString(a.AttributeName)] = true
	}
	var indexes []string
	for _, g := range reqs.GlobalSecondaryIndexes {
		indexes = append(indexes, aws.ToString(g.IndexName))
		for _, k := range g.KeySchema {
			assert.True(t, declared[aws.ToString(k.AttributeName)], "index %s key %s must be declared", aws.ToString(g.IndexName), aws.ToString(k.AttributeName))
		}
	}
	assert.ElementsMatch(t, []string{
		"customer_email-index", "customer_phone-index", "status-index",
		"device-index", "appointment-index", "submitted_at-index",
	}, indexes)
	// Every declared attribute must be used by a key, or DynamoDB rejects the table.
	assert.Len(t, reqs.AttributeDefinitions, 9)

	slots := defs[byName["slots"]]
	require.Len(t, slots.KeySchema, 2)
	assert.Equal(t, "time", aws.ToString(slots.KeySchema[1].AttributeName))
}

func TestNewDynamoDBConfig_Endpoint(t *testing.T) {
	cfg, err := NewDynamoDBConfig(t.Context(), appconfig.AWS{
		Region:          "us-east-1",
		Endpoint:        "http://localhost:8000",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}
