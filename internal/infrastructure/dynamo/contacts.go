package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-contacts-api/internal/domain"
)

// ContactRepo provides typed DynamoDB operations for the contacts table.
// The table is keyed by user_id, so all operations are single atomic
// conditional calls — there is no read-then-write window between concurrent
// requests for the same owner.
type ContactRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewContactRepo(client *dynamodb.Client, tableName string) *ContactRepo {
	return &ContactRepo{client: client, tableName: tableName}
}

func (r *ContactRepo) Get(ctx context.Context, userID string) (*domain.Contact, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("user_id", userID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("contact not found: %w", domain.ErrNotFound)
	}
	var c domain.Contact
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts the contact, refusing to overwrite an existing record for
// the same owner.
func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal contact: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	})
	if isConditionalCheckFailed(err) {
		return fmt.Errorf("contact already exists: %w", domain.ErrConflict)
	}
	return err
}

// Update overwrites name and phone on the owner's record in one conditional
// call; it fails if no record exists.
func (r *ContactRepo) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("user_id", userID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(user_id)"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	if isConditionalCheckFailed(err) {
		return fmt.Errorf("contact not found: %w", domain.ErrNotFound)
	}
	return err
}

// Delete removes the owner's record in one conditional call; it fails if no
// record exists.
func (r *ContactRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("user_id", userID),
		ConditionExpression: aws.String("attribute_exists(user_id)"),
	})
	if isConditionalCheckFailed(err) {
		return fmt.Errorf("contact not found: %w", domain.ErrNotFound)
	}
	return err
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
