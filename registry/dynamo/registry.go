// Package dynamo provides a registry.Registry backed by DynamoDB.
//
// DynamoDB conditional writes give the compare-and-swap semantics that make
// run IDs collision safe across concurrent writers.
//
// Table schema:
//   - Partition key: dataset (string)
//   - Sort key: run_id (string)
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name clusterkit-runs \
//	  --attribute-definitions AttributeName=dataset,AttributeType=S AttributeName=run_id,AttributeType=S \
//	  --key-schema AttributeName=dataset,KeyType=HASH AttributeName=run_id,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/clusterkit/registry"
)

// Client is the subset of the DynamoDB API the registry uses.
// *dynamodb.Client satisfies it; tests substitute a fake.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Registry implements registry.Registry on DynamoDB.
type Registry struct {
	client    Client
	tableName string
}

// NewRegistry creates a DynamoDB-backed run registry.
func NewRegistry(client Client, tableName string) *Registry {
	return &Registry{client: client, tableName: tableName}
}

// Record implements registry.Registry. The conditional write fails with
// registry.ErrAlreadyRecorded if the (dataset, run_id) pair exists.
func (r *Registry) Record(ctx context.Context, rec registry.RunRecord) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"dataset":    &types.AttributeValueMemberS{Value: rec.Dataset},
			"run_id":     &types.AttributeValueMemberS{Value: rec.ID},
			"k":          &types.AttributeValueMemberN{Value: strconv.Itoa(rec.K)},
			"iterations": &types.AttributeValueMemberN{Value: strconv.Itoa(rec.Iterations)},
			"converged":  &types.AttributeValueMemberBOOL{Value: rec.Converged},
			"wcss":       &types.AttributeValueMemberN{Value: formatFloat(rec.WCSS)},
			"silhouette": &types.AttributeValueMemberN{Value: formatFloat(rec.Silhouette)},
			"created_at": &types.AttributeValueMemberS{Value: rec.CreatedAt.UTC().Format(time.RFC3339Nano)},
		},
		ConditionExpression: aws.String("attribute_not_exists(run_id)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return registry.ErrAlreadyRecorded
		}
		return fmt.Errorf("dynamo: record run: %w", err)
	}
	return nil
}

// Get implements registry.Registry.
func (r *Registry) Get(ctx context.Context, dataset, id string) (*registry.RunRecord, error) {
	resp, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"dataset": &types.AttributeValueMemberS{Value: dataset},
			"run_id":  &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dynamo: get run: %w", err)
	}
	if len(resp.Item) == 0 {
		return nil, registry.ErrNotFound
	}
	return decodeItem(resp.Item)
}

// List implements registry.Registry. Records come back in run-ID order, the
// table's sort-key order.
func (r *Registry) List(ctx context.Context, dataset string) ([]registry.RunRecord, error) {
	var records []registry.RunRecord

	var startKey map[string]types.AttributeValue
	for {
		resp, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("dataset = :ds"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":ds": &types.AttributeValueMemberS{Value: dataset},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("dynamo: list runs: %w", err)
		}

		for _, item := range resp.Items {
			rec, err := decodeItem(item)
			if err != nil {
				return nil, err
			}
			records = append(records, *rec)
		}

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		startKey = resp.LastEvaluatedKey
	}

	return records, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func decodeItem(item map[string]types.AttributeValue) (*registry.RunRecord, error) {
	var rec registry.RunRecord
	var err error

	if rec.Dataset, err = stringAttr(item, "dataset"); err != nil {
		return nil, err
	}
	if rec.ID, err = stringAttr(item, "run_id"); err != nil {
		return nil, err
	}
	if rec.K, err = intAttr(item, "k"); err != nil {
		return nil, err
	}
	if rec.Iterations, err = intAttr(item, "iterations"); err != nil {
		return nil, err
	}
	if rec.WCSS, err = floatAttr(item, "wcss"); err != nil {
		return nil, err
	}
	if rec.Silhouette, err = floatAttr(item, "silhouette"); err != nil {
		return nil, err
	}

	if b, ok := item["converged"].(*types.AttributeValueMemberBOOL); ok {
		rec.Converged = b.Value
	}

	created, err := stringAttr(item, "created_at")
	if err != nil {
		return nil, err
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("dynamo: parse created_at: %w", err)
	}

	return &rec, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) (string, error) {
	attr, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("dynamo: missing or invalid attribute %q", name)
	}
	return attr.Value, nil
}

func intAttr(item map[string]types.AttributeValue, name string) (int, error) {
	attr, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("dynamo: missing or invalid attribute %q", name)
	}
	v, err := strconv.Atoi(attr.Value)
	if err != nil {
		return 0, fmt.Errorf("dynamo: parse attribute %q: %w", name, err)
	}
	return v, nil
}

func floatAttr(item map[string]types.AttributeValue, name string) (float64, error) {
	attr, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("dynamo: missing or invalid attribute %q", name)
	}
	v, err := strconv.ParseFloat(attr.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("dynamo: parse attribute %q: %w", name, err)
	}
	return v, nil
}
