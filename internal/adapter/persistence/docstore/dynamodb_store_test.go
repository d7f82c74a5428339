package docstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	getOut    *dynamodb.GetItemOutput
	err       error
	puts      []*dynamodb.PutItemInput
	updates   []*dynamodb.UpdateItemInput
	deletes   []*dynamodb.DeleteItemInput
	queries   []*dynamodb.QueryInput
	queryPage []*dynamodb.QueryOutput
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	return &dynamodb.UpdateItemOutput{}, f.err
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deletes = append(f.deletes, in)
	return &dynamodb.DeleteItemOutput{}, f.err
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.err != nil {
		return nil, f.err
	}
	page := f.queryPage[0]
	f.queryPage = f.queryPage[1:]
	return page, nil
}

func newTestDynamoStore(f *fakeDynamo) *DynamoStore {
	return NewDynamoStore(f, map[string]string{interfaces.CollectionQuotes: "quotes-table"}, nil, 0, zerolog.Nop())
}

func TestDynamoStore_CreateUsesConditionalPut(t *testing.T) {
	f := &fakeDynamo{}
	s := newTestDynamoStore(f)

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, s.Create(context.Background(), interfaces.CollectionQuotes, "q1", map[string]any{
		"userId":    "p1",
		"createdAt": created,
	}))
	require.Len(t, f.puts, 1)
	in := f.puts[0]
	assert.Equal(t, "quotes-table", aws.ToString(in.TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "q1"}, in.Item["id"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "p1"}, in.Item["userId"])
	assert.IsType(t, &types.AttributeValueMemberS{}, in.Item["createdAt"])

	f.err = &types.ConditionalCheckFailedException{}
	assert.ErrorIs(t, s.Create(context.Background(), interfaces.CollectionQuotes, "q1", map[string]any{}), interfaces.ErrDocumentExists)
}

func TestDynamoStore_UpdateBuildsSetExpression(t *testing.T) {
	f := &fakeDynamo{}
	s := newTestDynamoStore(f)

	require.NoError(t, s.Update(context.Background(), interfaces.CollectionQuotes, "q1", map[string]any{
		"windows":    map[string]any{"XS": 2},
		"finalPrice": 58.0,
	}))
	require.Len(t, f.updates, 1)
	in := f.updates[0]
	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1", aws.ToString(in.UpdateExpression))
	assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
	assert.Equal(t, map[string]string{"#f0": "finalPrice", "#f1": "windows", "#id": "id"}, in.ExpressionAttributeNames)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "58"}, in.ExpressionAttributeValues[":v0"])
	assert.IsType(t, &types.AttributeValueMemberM{}, in.ExpressionAttributeValues[":v1"])

	f.err = &types.ConditionalCheckFailedException{}
	assert.ErrorIs(t, s.Update(context.Background(), interfaces.CollectionQuotes, "q1", map[string]any{"a": 1}), interfaces.ErrDocumentNotFound)
	assert.ErrorIs(t, s.Delete(context.Background(), interfaces.CollectionQuotes, "q1"), interfaces.ErrDocumentNotFound)
}

func TestDynamoStore_GetDecodesItem(t *testing.T) {
	f := &fakeDynamo{}
	s := newTestDynamoStore(f)

	doc, err := s.Get(context.Background(), interfaces.CollectionRates, "p1")
	require.NoError(t, err)
	assert.Nil(t, doc)

	f.getOut = &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"id":          &types.AttributeValueMemberS{Value: "p1"},
		"extraCharge": &types.AttributeValueMemberN{Value: "25"},
		"baseRates": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"XS": &types.AttributeValueMemberN{Value: "5"},
		}},
	}}
	doc, err = s.Get(context.Background(), interfaces.CollectionRates, "p1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, doc["extraCharge"])
	assert.Equal(t, map[string]any{"XS": 5.0}, doc["baseRates"])
	assert.NotContains(t, doc, "id")

	f.err = errors.New("throttled")
	_, err = s.Get(context.Background(), interfaces.CollectionRates, "p1")
	assert.EqualError(t, err, "throttled")
}

func TestDynamoStore_QueryPaginatesIndex(t *testing.T) {
	f := &fakeDynamo{queryPage: []*dynamodb.QueryOutput{
		{
			Items: []map[string]types.AttributeValue{
				{"id": &types.AttributeValueMemberS{Value: "q1"}, "userId": &types.AttributeValueMemberS{Value: "p1"}},
			},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "q1"}},
		},
		{
			Items: []map[string]types.AttributeValue{
				{"id": &types.AttributeValueMemberS{Value: "q2"}, "userId": &types.AttributeValueMemberS{Value: "p1"}},
			},
		},
	}}
	s := newTestDynamoStore(f)

	docs, err := s.Query(context.Background(), interfaces.CollectionQuotes, "userId", "p1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "q1", docs[0].ID)
	assert.Equal(t, "q2", docs[1].ID)
	assert.NotContains(t, docs[0].Data, "id")

	require.Len(t, f.queries, 2)
	assert.Equal(t, "userId-index", aws.ToString(f.queries[0].IndexName))
	assert.Equal(t, map[string]string{"#f": "userId"}, f.queries[0].ExpressionAttributeNames)
	assert.NotNil(t, f.queries[1].ExclusiveStartKey)
}
