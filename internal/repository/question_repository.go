package repository

import (
	"context"

	"quiz-session-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// QuestionRepository stores bank questions in MongoDB. The service only
// reads it at startup; writes exist for seeding and content management.
type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) FindByExamType(ctx context.Context, examType string) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, bson.M{"exam_type": examType})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

// BulkCreate inserts a batch of questions, used to seed an empty store
// from the embedded bank.
func (r *QuestionRepository) BulkCreate(ctx context.Context, questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	docs := make([]any, len(questions))
	for i := range questions {
		docs[i] = questions[i]
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}
