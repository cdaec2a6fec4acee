//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"orderdesk/internal/apperr"
	"orderdesk/internal/domain"
	"orderdesk/internal/repository"
)

type ProspectRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.ProspectRepo
}

func (s *ProspectRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewProspectRepo(tcPool)
}

func (s *ProspectRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE prospects CASCADE`)
	s.Require().NoError(err)
}

func (s *ProspectRepositorySuite) TestCreateAndList() {
	ctx := context.Background()

	in := &domain.Prospect{
		ID:      uuid.NewString(),
		Name:    "Farah",
		Phone:   "60198765432",
		Note:    "asked about bundle pricing",
		Source:  "whatsapp-relay",
		StaffID: "staff-2",
	}
	s.Require().NoError(s.repo.Create(ctx, in))

	list, err := s.repo.List(ctx, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(list, 1)

	got := list[0]
	s.Equal(in.ID, got.ID)
	s.Equal(in.Name, got.Name)
	s.Equal(in.Phone, got.Phone)
	s.Equal(in.Note, got.Note)
	s.Equal(in.Source, got.Source)
	s.Equal(in.StaffID, got.StaffID)
	s.False(got.CreatedAt.IsZero())
}

func (s *ProspectRepositorySuite) TestCreate_DuplicatePhone() {
	ctx := context.Background()

	phone := "60198765432"
	s.Require().NoError(s.repo.Create(ctx, &domain.Prospect{
		ID: uuid.NewString(), Name: "Farah", Phone: phone,
	}))

	err := s.repo.Create(ctx, &domain.Prospect{
		ID: uuid.NewString(), Name: "Farah again", Phone: phone,
	})
	s.ErrorIs(err, apperr.ErrConflict)
}

func (s *ProspectRepositorySuite) TestListWithLimitOffset() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.repo.Create(ctx, &domain.Prospect{
			ID:    uuid.NewString(),
			Name:  fmt.Sprintf("P%d", i+1),
			Phone: fmt.Sprintf("6019876543%d", i),
		}))
	}

	limit := 2
	offset := 1

	list, err := s.repo.List(ctx, &limit, &offset)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func TestProspectRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProspectRepositorySuite))
}
