package repository

import (
	"context"
	"errors"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	codeIndexName                 = "code-index"
)

type includedItemRecord struct {
	ID            string `dynamodbav:"id"`
	PartsSupplyID string `dynamodbav:"parts_supply_id"`
	Name          string `dynamodbav:"name"`
	UnitPrice     string `dynamodbav:"unit_price"`
	Quantity      int    `dynamodbav:"quantity"`
	Kind          string `dynamodbav:"kind"`
}

type includedServiceRecord struct {
	ID        string `dynamodbav:"id"`
	ServiceID string `dynamodbav:"service_id"`
	Name      string `dynamodbav:"name"`
	Price     string `dynamodbav:"price"`
}

type historyRecord struct {
	CreatedAt          string `dynamodbav:"created_at"`
	DiagnosisStartedAt string `dynamodbav:"diagnosis_started_at,omitempty"`
	BudgetGeneratedAt  string `dynamodbav:"budget_generated_at,omitempty"`
	ExecutionStartedAt string `dynamodbav:"execution_started_at,omitempty"`
	FinalizedAt        string `dynamodbav:"finalized_at,omitempty"`
	DeliveredAt        string `dynamodbav:"delivered_at,omitempty"`
}

type serviceOrderItem struct {
	ID        string                  `dynamodbav:"id"`
	Code      string                  `dynamodbav:"code"`
	VehicleID string                  `dynamodbav:"vehicle_id"`
	Status    string                  `dynamodbav:"status"`
	Items     []includedItemRecord    `dynamodbav:"items"`
	Services  []includedServiceRecord `dynamodbav:"services"`
	History   historyRecord           `dynamodbav:"history"`
}

// ServiceOrderDynamoRepository persists the ServiceOrder aggregate in
// DynamoDB as a single document.
//
// Table requirements:
//   - PK: id (string)
//   - GSI code-index: code (string)
//
// The code GSI is the authoritative uniqueness guard for order codes;
// the use-case collision loop is advisory only.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(order))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return order, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) GetByCode(ctx context.Context, code string) (entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(codeIndexName),
		KeyConditionExpression: aws.String("#code = :code"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders := make([]entities.ServiceOrder, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []serviceOrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			orders = append(orders, fromServiceOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

// Update replaces the whole aggregate document. Last write wins; the
// condition only guards against resurrecting a deleted order.
func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(order))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return order, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:        o.ID,
		Code:      o.Code,
		VehicleID: o.VehicleID,
		Status:    string(o.Status),
		Items:     make([]includedItemRecord, 0, len(o.Items)),
		Services:  make([]includedServiceRecord, 0, len(o.Services)),
		History: historyRecord{
			CreatedAt:          o.History.CreatedAt.UTC().Format(time.RFC3339Nano),
			DiagnosisStartedAt: timeToString(o.History.DiagnosisStartedAt),
			BudgetGeneratedAt:  timeToString(o.History.BudgetGeneratedAt),
			ExecutionStartedAt: timeToString(o.History.ExecutionStartedAt),
			FinalizedAt:        timeToString(o.History.FinalizedAt),
			DeliveredAt:        timeToString(o.History.DeliveredAt),
		},
	}
	for _, item := range o.Items {
		it.Items = append(it.Items, includedItemRecord{
			ID:            item.ID,
			PartsSupplyID: item.PartsSupplyID,
			Name:          item.Name,
			UnitPrice:     floatToString(item.UnitPrice),
			Quantity:      item.Quantity,
			Kind:          string(item.Kind),
		})
	}
	for _, svc := range o.Services {
		it.Services = append(it.Services, includedServiceRecord{
			ID:        svc.ID,
			ServiceID: svc.ServiceID,
			Name:      svc.Name,
			Price:     floatToString(svc.Price),
		})
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:        it.ID,
		Code:      it.Code,
		VehicleID: it.VehicleID,
		Status:    entities.OSStatus(it.Status),
		History: entities.History{
			CreatedAt:          parseTime(it.History.CreatedAt),
			DiagnosisStartedAt: stringToTime(it.History.DiagnosisStartedAt),
			BudgetGeneratedAt:  stringToTime(it.History.BudgetGeneratedAt),
			ExecutionStartedAt: stringToTime(it.History.ExecutionStartedAt),
			FinalizedAt:        stringToTime(it.History.FinalizedAt),
			DeliveredAt:        stringToTime(it.History.DeliveredAt),
		},
	}
	for _, item := range it.Items {
		o.Items = append(o.Items, entities.IncludedItem{
			ID:            item.ID,
			PartsSupplyID: item.PartsSupplyID,
			Name:          item.Name,
			UnitPrice:     stringToFloat(item.UnitPrice),
			Quantity:      item.Quantity,
			Kind:          entities.ItemKind(item.Kind),
		})
	}
	for _, svc := range it.Services {
		o.Services = append(o.Services, entities.IncludedService{
			ID:        svc.ID,
			ServiceID: svc.ServiceID,
			Name:      svc.Name,
			Price:     stringToFloat(svc.Price),
		})
	}
	return o
}
