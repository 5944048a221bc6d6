package repository

import (
	"context"
	"sort"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type projectItem struct {
	ID              string                       `dynamodbav:"id"`
	OwnerID         string                       `dynamodbav:"owner_id"`
	Title           string                       `dynamodbav:"title"`
	ClientName      string                       `dynamodbav:"client_name"`
	ClientEmail     string                       `dynamodbav:"client_email,omitempty"`
	ClientPhone     string                       `dynamodbav:"client_phone,omitempty"`
	ProjectType     string                       `dynamodbav:"project_type"`
	SpaceType       string                       `dynamodbav:"space_type"`
	AreaSqft        float64                      `dynamodbav:"area_sqft"`
	StyleName       string                       `dynamodbav:"style_name"`
	StyleColors     []string                     `dynamodbav:"style_colors,omitempty"`
	Materials       entities.MaterialPreferences `dynamodbav:"materials"`
	BudgetMin       float64                      `dynamodbav:"budget_min"`
	BudgetMax       float64                      `dynamodbav:"budget_max"`
	PhotoURLs       []string                     `dynamodbav:"photo_urls,omitempty"`
	PreviewImageURL string                       `dynamodbav:"preview_image_url,omitempty"`
	Status          string                       `dynamodbav:"status"`
	CreatedAt       string                       `dynamodbav:"created_at"`
	UpdatedAt       string                       `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	return decodeProject(out.Item)
}

// ListByOwner returns the owner's projects, newest first.
func (r *ProjectDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsOwnerIndex),
		KeyConditionExpression: aws.String("#owner_id = :owner_id"),
		ExpressionAttributeNames: map[string]string{
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
	})

	res := make([]entities.Project, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []projectItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			res = append(res, fromProjectItem(it))
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, "id", id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Project{}, err
	}
	return decodeProject(attrs)
}

func (r *ProjectDynamoRepository) UpdatePreview(ctx context.Context, id string, previewURL string, status entities.ProjectStatus) (entities.Project, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, "id", id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #preview = :preview, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":preview":    &types.AttributeValueMemberS{Value: previewURL},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#preview":    "preview_image_url",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Project{}, err
	}
	return decodeProject(attrs)
}

func decodeProject(attrs map[string]types.AttributeValue) (entities.Project, error) {
	if len(attrs) == 0 {
		return entities.Project{}, nil
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Title:           p.Title,
		ClientName:      p.Client.Name,
		ClientEmail:     p.Client.Email,
		ClientPhone:     p.Client.Phone,
		ProjectType:     p.ProjectType,
		SpaceType:       p.SpaceType,
		AreaSqft:        p.AreaSqft,
		StyleName:       p.Style.Name,
		StyleColors:     p.Style.Colors,
		Materials:       p.Materials,
		BudgetMin:       p.Budget.Min,
		BudgetMax:       p.Budget.Max,
		PhotoURLs:       p.PhotoURLs,
		PreviewImageURL: p.PreviewImageURL,
		Status:          string(p.Status),
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:              it.ID,
		OwnerID:         it.OwnerID,
		Title:           it.Title,
		Client:          entities.ClientContact{Name: it.ClientName, Email: it.ClientEmail, Phone: it.ClientPhone},
		ProjectType:     it.ProjectType,
		SpaceType:       it.SpaceType,
		AreaSqft:        it.AreaSqft,
		Style:           entities.StylePreferences{Name: it.StyleName, Colors: it.StyleColors},
		Materials:       it.Materials,
		Budget:          entities.BudgetRange{Min: it.BudgetMin, Max: it.BudgetMax},
		PhotoURLs:       it.PhotoURLs,
		PreviewImageURL: it.PreviewImageURL,
		Status:          entities.ProjectStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
