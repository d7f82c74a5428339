package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"quickquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const keyAttribute = "id"

// dynamoAPI is the subset of *dynamodb.Client the store uses.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DynamoStore persists documents in DynamoDB, one table per collection.
//
// Table requirements:
//   - PK: id (string)
//   - Quotes: GSI "userId-index" with hash key userId (string)
//
// Query(collection, field, value) reads the GSI named "<field>-index".
// DynamoDB has no live queries; Watch re-queries on change-feed signals and
// on a fixed poll interval.
type DynamoStore struct {
	ddb    dynamoAPI
	tables map[string]string
	feed   ChangeFeed
	poll   time.Duration
	log    zerolog.Logger
}

var _ interfaces.IDocumentStore = (*DynamoStore)(nil)

// NewDynamoStore maps collection names to table names. Collections without a
// mapping use the collection name as the table name.
func NewDynamoStore(ddb dynamoAPI, tables map[string]string, feed ChangeFeed, poll time.Duration, log zerolog.Logger) *DynamoStore {
	if feed == nil {
		feed = NewLocalFeed()
	}
	return &DynamoStore{ddb: ddb, tables: tables, feed: feed, poll: poll, log: log}
}

func (s *DynamoStore) table(collection string) string {
	if t, ok := s.tables[collection]; ok && t != "" {
		return t
	}
	return collection
}

func (s *DynamoStore) NewID(string) string {
	return uuid.NewString()
}

func (s *DynamoStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table(collection)),
		Key: map[string]types.AttributeValue{
			keyAttribute: &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	data, err := fromItem(out.Item)
	if err != nil {
		return nil, err
	}
	delete(data, keyAttribute)
	return data, nil
}

func (s *DynamoStore) Create(ctx context.Context, collection, id string, data map[string]any) error {
	item, err := toItem(id, data)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table(collection)),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": keyAttribute,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDocumentExists
		}
		return err
	}
	s.changed(ctx, collection)
	return nil
}

func (s *DynamoStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	item, err := toItem(id, data)
	if err != nil {
		return err
	}
	if _, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table(collection)),
		Item:      item,
	}); err != nil {
		return err
	}
	s.changed(ctx, collection)
	return nil
}

func (s *DynamoStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	updateExpr, values, names, err := buildSetExpression(fields)
	if err != nil {
		return err
	}

	_, err = s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.table(collection)),
		Key: map[string]types.AttributeValue{
			keyAttribute: &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": keyAttribute}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDocumentNotFound
		}
		return err
	}
	s.changed(ctx, collection)
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table(collection)),
		Key: map[string]types.AttributeValue{
			keyAttribute: &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": keyAttribute,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDocumentNotFound
		}
		return err
	}
	s.changed(ctx, collection)
	return nil
}

func (s *DynamoStore) Query(ctx context.Context, collection, field string, value any) ([]interfaces.Document, error) {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return nil, err
	}

	p := dynamodb.NewQueryPaginator(s.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(s.table(collection)),
		IndexName:              aws.String(field + "-index"),
		KeyConditionExpression: aws.String("#f = :v"),
		ExpressionAttributeNames: map[string]string{
			"#f": field,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": av,
		},
	})

	var docs []interfaces.Document
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			data, err := fromItem(item)
			if err != nil {
				return nil, err
			}
			id, _ := data[keyAttribute].(string)
			delete(data, keyAttribute)
			docs = append(docs, interfaces.Document{ID: id, Data: data})
		}
	}
	return docs, nil
}

func (s *DynamoStore) Watch(ctx context.Context, collection, field string, value any, onChange func([]interfaces.Document), onError func(error)) (func(), error) {
	query := func(ctx context.Context) ([]interfaces.Document, error) {
		return s.Query(ctx, collection, field, value)
	}
	return pollingWatch(ctx, s.feed, collection, s.poll, query, onChange, onError, s.log)
}

func (s *DynamoStore) changed(ctx context.Context, collection string) {
	if err := s.feed.Publish(ctx, collection); err != nil {
		s.log.Warn().Err(err).Str("collection", collection).Msg("[docstore][dynamodb] publish change")
	}
}

func toItem(id string, data map[string]any) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(data)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	item[keyAttribute] = &types.AttributeValueMemberS{Value: id}
	return item, nil
}

func fromItem(item map[string]types.AttributeValue) (map[string]any, error) {
	var data map[string]any
	if err := attributevalue.UnmarshalMap(item, &data); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return data, nil
}

// buildSetExpression renders "SET #f0 = :v0, #f1 = :v1" with fields in key order.
func buildSetExpression(fields map[string]any) (string, map[string]types.AttributeValue, map[string]string, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	expr := "SET "
	values := make(map[string]types.AttributeValue, len(keys))
	names := make(map[string]string, len(keys))
	for i, k := range keys {
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal field %s: %w", k, err)
		}
		name := fmt.Sprintf("#f%d", i)
		val := fmt.Sprintf(":v%d", i)
		if i > 0 {
			expr += ", "
		}
		expr += name + " = " + val
		names[name] = k
		values[val] = av
	}
	return expr, values, names, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
