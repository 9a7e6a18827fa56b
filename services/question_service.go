package services

import (
	"errors"

	"quizapp/models"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionRequest struct {
	Text       string `json:"text" binding:"required"`
	OptionA    string `json:"option_a" binding:"required"`
	OptionB    string `json:"option_b" binding:"required"`
	OptionC    string `json:"option_c" binding:"required"`
	OptionD    string `json:"option_d" binding:"required"`
	CorrectAns string `json:"correct_ans" binding:"required"`
}

func (s *QuestionService) List() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Order("id").Find(&questions).Error
	return questions, err
}

func (s *QuestionService) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) Create(req *QuestionRequest) (*models.Question, error) {
	// The correct answer is accepted as free text; it is deliberately not
	// checked against the four options.
	question := models.Question{
		Text:       req.Text,
		OptionA:    req.OptionA,
		OptionB:    req.OptionB,
		OptionC:    req.OptionC,
		OptionD:    req.OptionD,
		CorrectAns: req.CorrectAns,
	}

	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}

	return &question, nil
}

// Update replaces all six fields. Concurrent edits are last-write-wins.
func (s *QuestionService) Update(id uint, req *QuestionRequest) (*models.Question, error) {
	question, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	question.Text = req.Text
	question.OptionA = req.OptionA
	question.OptionB = req.OptionB
	question.OptionC = req.OptionC
	question.OptionD = req.OptionD
	question.CorrectAns = req.CorrectAns

	if err := s.db.Save(question).Error; err != nil {
		return nil, err
	}

	return question, nil
}

// Delete is unconditional and irreversible. Historical results are untouched:
// they reference no live question rows.
func (s *QuestionService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.Question{}, id).Error
}

func (s *QuestionService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Question{}).Count(&count).Error
	return count, err
}
