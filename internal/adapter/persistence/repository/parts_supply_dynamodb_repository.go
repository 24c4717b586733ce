package repository

import (
	"context"
	"strconv"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPartsSuppliesTableName = "parts_supplies"

type partsSupplyItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Price    string `dynamodbav:"price"`
	Quantity int    `dynamodbav:"quantity"`
	Kind     string `dynamodbav:"kind"`
}

// PartsSupplyDynamoRepository adapts the inventory collaborator port to
// the parts_supplies table (PK: id).

type PartsSupplyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartsSupplyService = (*PartsSupplyDynamoRepository)(nil)

func NewPartsSupplyDynamoRepository(ddb *dynamodb.Client) *PartsSupplyDynamoRepository {
	return &PartsSupplyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_SUPPLIES_TABLE", defaultPartsSuppliesTableName),
	}
}

func (r *PartsSupplyDynamoRepository) GetByID(ctx context.Context, id string) (entities.PartsSupply, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PartsSupply{}, err
	}
	if len(out.Item) == 0 {
		return entities.PartsSupply{}, nil
	}

	var it partsSupplyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PartsSupply{}, err
	}
	return entities.PartsSupply{
		ID:       it.ID,
		Name:     it.Name,
		Price:    stringToFloat(it.Price),
		Quantity: it.Quantity,
		Kind:     entities.ItemKind(it.Kind),
	}, nil
}

func (r *PartsSupplyDynamoRepository) CheckAvailability(ctx context.Context, id string, quantity int) (bool, error) {
	supply, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if supply.ID == "" {
		return false, nil
	}
	return supply.Quantity >= quantity, nil
}

func (r *PartsSupplyDynamoRepository) SetQuantity(ctx context.Context, id string, newQuantity int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #quantity = :quantity"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#quantity": "quantity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quantity": &types.AttributeValueMemberN{Value: strconv.Itoa(newQuantity)},
		},
	})
	return err
}
