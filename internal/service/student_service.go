package service

import (
	"context"
	"time"

	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/pkg/apperror"
	"sports-academy-be/internal/repository/specification"
	"sports-academy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id uuid.UUID, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	GetStudent(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, error)
	GetStudents(ctx context.Context, limit, offset int) ([]*dto.StudentResponse, error)
	DeactivateStudent(ctx context.Context, id uuid.UUID) error
}

type studentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStudentService(uowFactory unitofwork.RepositoryFactory) StudentService {
	return &studentService{uowFactory: uowFactory}
}

func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.StudentRepository().Count(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperror.Validationf("a student with email %q already exists", req.Email)
	}

	student := &entity.Student{
		Id:          uuid.New(),
		UserId:      req.UserId,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Guardian:    req.Guardian,
		JoinedAt:    time.Now(),
		IsActive:    true,
	}
	if err := uow.StudentRepository().Create(ctx, student); err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id uuid.UUID, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}

	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.Email != nil && *req.Email != student.Email {
		existing, err := uow.StudentRepository().Count(ctx, specification.ByEmail{Email: *req.Email})
		if err != nil {
			return nil, err
		}
		if existing > 0 {
			return nil, apperror.Validationf("a student with email %q already exists", *req.Email)
		}
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		student.DateOfBirth = req.DateOfBirth
	}
	if req.Guardian != nil {
		student.Guardian = *req.Guardian
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := uow.StudentRepository().Update(ctx, student); err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) GetStudent(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}
	return toStudentResponse(student), nil
}

func (s *studentService) GetStudents(ctx context.Context, limit, offset int) ([]*dto.StudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	students, err := uow.StudentRepository().FindAll(ctx,
		specification.OrderBy{Field: "joined_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StudentResponse, 0, len(students))
	for _, st := range students {
		result = append(result, toStudentResponse(st))
	}
	return result, nil
}

func (s *studentService) DeactivateStudent(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if student == nil {
		return apperror.NotFound("student")
	}
	student.IsActive = false
	return uow.StudentRepository().Update(ctx, student)
}

func toStudentResponse(st *entity.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		Id:               st.Id,
		UserId:           st.UserId,
		FullName:         st.FullName,
		Email:            st.Email,
		Phone:            st.Phone,
		DateOfBirth:      st.DateOfBirth,
		Guardian:         st.Guardian,
		JoinedAt:         st.JoinedAt,
		IsActive:         st.IsActive,
		SessionsAttended: st.SessionsAttended,
		SessionsMissed:   st.SessionsMissed,
	}
}
