package campaign

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

// fakeCampaignRepository is an in-memory CampaignRepository for use case tests.
type fakeCampaignRepository struct {
	campaigns map[uuid.UUID]*entity.Campaign
	createErr error
}

func newFakeCampaignRepository() *fakeCampaignRepository {
	return &fakeCampaignRepository{campaigns: make(map[uuid.UUID]*entity.Campaign)}
}

func (r *fakeCampaignRepository) Create(_ context.Context, campaign *entity.Campaign) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.campaigns[campaign.ID] = campaign
	return nil
}

func (r *fakeCampaignRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Campaign, error) {
	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, domainerror.ErrCampaignNotFound
	}
	return campaign, nil
}

func (r *fakeCampaignRepository) FindByFilter(_ context.Context, _ adapter.CampaignFilter) ([]*entity.Campaign, error) {
	result := make([]*entity.Campaign, 0, len(r.campaigns))
	for _, campaign := range r.campaigns {
		result = append(result, campaign)
	}
	return result, nil
}

func (r *fakeCampaignRepository) Update(_ context.Context, campaign *entity.Campaign) error {
	r.campaigns[campaign.ID] = campaign
	return nil
}

func (r *fakeCampaignRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.campaigns, id)
	return nil
}

func (r *fakeCampaignRepository) Count(_ context.Context, status *entity.CampaignStatus) (int64, error) {
	var count int64
	for _, campaign := range r.campaigns {
		if status == nil || campaign.Status == *status {
			count++
		}
	}
	return count, nil
}

func (r *fakeCampaignRepository) GetTotals(_ context.Context) (*entity.CampaignTotals, error) {
	totals := &entity.CampaignTotals{TotalBudget: decimal.Zero}
	for _, campaign := range r.campaigns {
		totals.TotalBudget = totals.TotalBudget.Add(campaign.Budget)
		totals.TotalLeads += int64(campaign.LeadsGenerated)
		totals.TotalConversions += int64(campaign.Conversions)
	}
	return totals, nil
}

func (r *fakeCampaignRepository) GetPlatformPerformance(_ context.Context) ([]entity.PlatformPerformance, error) {
	return nil, nil
}

func (r *fakeCampaignRepository) GetMonthlyStats(_ context.Context, _ int) ([]entity.MonthlyCampaignStats, error) {
	return nil, nil
}

func validCreateCampaignInput() CreateCampaignInput {
	return CreateCampaignInput{
		Name:           "Summer Sale",
		Platform:       entity.PlatformFacebook,
		StartDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Budget:         decimal.NewFromInt(5000),
		LeadsGenerated: 250,
		Conversions:    45,
	}
}

func TestCreateCampaignUseCase_Execute(t *testing.T) {
	t.Run("creates campaign with derived metrics", func(t *testing.T) {
		repo := newFakeCampaignRepository()
		uc := NewCreateCampaignUseCase(repo)

		output, err := uc.Execute(context.Background(), validCreateCampaignInput())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.Campaign.Status != entity.CampaignStatusActive {
			t.Errorf("expected default status active, got %s", output.Campaign.Status)
		}
		if want := decimal.NewFromInt(20); !output.Campaign.CostPerLead.Equal(want) {
			t.Errorf("expected costPerLead %s, got %s", want, output.Campaign.CostPerLead)
		}
		if want := decimal.NewFromInt(80); !output.Campaign.ROI.Equal(want) {
			t.Errorf("expected roi %s, got %s", want, output.Campaign.ROI)
		}
		if want := decimal.NewFromInt(18); !output.Campaign.ConversionRate.Equal(want) {
			t.Errorf("expected conversionRate %s, got %s", want, output.Campaign.ConversionRate)
		}
		if len(repo.campaigns) != 1 {
			t.Errorf("expected 1 persisted campaign, got %d", len(repo.campaigns))
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*CreateCampaignInput)
			wantErr error
		}{
			{
				name:    "missing name",
				mutate:  func(in *CreateCampaignInput) { in.Name = "" },
				wantErr: domainerror.ErrMissingCampaignName,
			},
			{
				name:    "unknown platform",
				mutate:  func(in *CreateCampaignInput) { in.Platform = "TikTok" },
				wantErr: domainerror.ErrInvalidCampaignPlatform,
			},
			{
				name: "end date before start date",
				mutate: func(in *CreateCampaignInput) {
					in.EndDate = in.StartDate.AddDate(0, 0, -1)
				},
				wantErr: domainerror.ErrInvalidCampaignDateRange,
			},
			{
				name:    "negative budget",
				mutate:  func(in *CreateCampaignInput) { in.Budget = decimal.NewFromInt(-1) },
				wantErr: domainerror.ErrNegativeCampaignBudget,
			},
			{
				name:    "negative conversions",
				mutate:  func(in *CreateCampaignInput) { in.Conversions = -1 },
				wantErr: domainerror.ErrNegativeCampaignCounts,
			},
			{
				name: "conversions exceed leads",
				mutate: func(in *CreateCampaignInput) {
					in.LeadsGenerated = 10
					in.Conversions = 11
				},
				wantErr: domainerror.ErrConversionsExceedLeads,
			},
			{
				name:    "unknown status",
				mutate:  func(in *CreateCampaignInput) { in.Status = "archived" },
				wantErr: domainerror.ErrInvalidCampaignStatus,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newFakeCampaignRepository()
				uc := NewCreateCampaignUseCase(repo)

				input := validCreateCampaignInput()
				tt.mutate(&input)

				_, err := uc.Execute(context.Background(), input)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				if len(repo.campaigns) != 0 {
					t.Error("expected no campaign to be persisted")
				}
			})
		}
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		repo := newFakeCampaignRepository()
		repo.createErr = errors.New("connection refused")
		uc := NewCreateCampaignUseCase(repo)

		_, err := uc.Execute(context.Background(), validCreateCampaignInput())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
