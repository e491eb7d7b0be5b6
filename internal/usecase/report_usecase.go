package usecase

import (
	"cmp"
	"context"
	"io"
	"slices"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/domain/schedule"
	"repair_intake/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// BrandReport aggregates requests per device brand. Revenue sums the actual
// totals of completed work; AvgQuoted is rounded to cents.
type BrandReport struct {
	Brand     string          `json:"brand"`
	Requests  int             `json:"requests"`
	Revenue   decimal.Decimal `json:"revenue"`
	AvgQuoted decimal.Decimal `json:"avg_quoted"`
}

// ServiceReport counts how often a service was requested.
type ServiceReport struct {
	ServiceName string          `json:"service_name"`
	Count       int             `json:"count"`
	AvgQuoted   decimal.Decimal `json:"avg_quoted"`
}

type IReportUseCase interface {
	ByBrand(ctx context.Context) ([]BrandReport, error)
	ByService(ctx context.Context) ([]ServiceReport, error)
	Pending(ctx context.Context) ([]entities.RepairRequest, error)
	TodayAppointments(ctx context.Context) ([]entities.RepairRequest, error)
	Export(ctx context.Context, w io.Writer) error
}

// ReportWriterFactory opens a fresh writer per export.
type ReportWriterFactory func() interfaces.IReportWriter

type ReportUseCase struct {
	requests  interfaces.IRepairRequestRepository
	schedule  schedule.Schedule
	newWriter ReportWriterFactory
	now       func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(requests interfaces.IRepairRequestRepository, sched schedule.Schedule, newWriter ReportWriterFactory) *ReportUseCase {
	return &ReportUseCase{requests: requests, schedule: sched, newWriter: newWriter, now: time.Now}
}

func (u *ReportUseCase) ByBrand(ctx context.Context) ([]BrandReport, error) {
	all, err := u.requests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return brandReports(all), nil
}

func brandReports(all []entities.RepairRequest) []BrandReport {
	type acc struct {
		count   int
		revenue decimal.Decimal
		quoted  decimal.Decimal
	}
	byBrand := map[string]*acc{}
	for _, r := range all {
		a, ok := byBrand[r.Device.Brand]
		if !ok {
			a = &acc{revenue: decimal.Zero, quoted: decimal.Zero}
			byBrand[r.Device.Brand] = a
		}
		a.count++
		a.quoted = a.quoted.Add(r.TotalQuotedPrice)
		if r.TotalActualPrice != nil {
			a.revenue = a.revenue.Add(*r.TotalActualPrice)
		}
	}

	out := make([]BrandReport, 0, len(byBrand))
	for brand, a := range byBrand {
		out = append(out, BrandReport{
			Brand:     brand,
			Requests:  a.count,
			Revenue:   a.revenue,
			AvgQuoted: a.quoted.DivRound(decimal.NewFromInt(int64(a.count)), 2),
		})
	}
	slices.SortFunc(out, func(a, b BrandReport) int {
		return cmp.Or(cmp.Compare(b.Requests, a.Requests), cmp.Compare(a.Brand, b.Brand))
	})
	return out
}

func (u *ReportUseCase) ByService(ctx context.Context) ([]ServiceReport, error) {
	all, err := u.requests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return serviceReports(all), nil
}

func serviceReports(all []entities.RepairRequest) []ServiceReport {
	type acc struct {
		count  int
		quoted decimal.Decimal
	}
	byName := map[string]*acc{}
	for _, r := range all {
		for _, it := range r.Repairs {
			a, ok := byName[it.ServiceName]
			if !ok {
				a = &acc{quoted: decimal.Zero}
				byName[it.ServiceName] = a
			}
			a.count++
			a.quoted = a.quoted.Add(it.QuotedPrice)
		}
	}

	out := make([]ServiceReport, 0, len(byName))
	for name, a := range byName {
		out = append(out, ServiceReport{
			ServiceName: name,
			Count:       a.count,
			AvgQuoted:   a.quoted.DivRound(decimal.NewFromInt(int64(a.count)), 2),
		})
	}
	slices.SortFunc(out, func(a, b ServiceReport) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.ServiceName, b.ServiceName))
	})
	return out
}

// Pending lists open requests that have not started work, newest first.
func (u *ReportUseCase) Pending(ctx context.Context) ([]entities.RepairRequest, error) {
	var out []entities.RepairRequest
	for _, s := range []entities.RepairStatus{
		entities.RepairStatusPendingQuote,
		entities.RepairStatusQuoted,
		entities.RepairStatusConfirmed,
	} {
		reqs, err := u.requests.ListByStatus(ctx, s)
		if err != nil {
			return nil, err
		}
		out = append(out, reqs...)
	}
	slices.SortStableFunc(out, func(a, b entities.RepairRequest) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})
	return out, nil
}

// TodayAppointments lists today's non-cancelled appointments by time.
func (u *ReportUseCase) TodayAppointments(ctx context.Context) ([]entities.RepairRequest, error) {
	today := u.schedule.Today(u.now()).Format(entities.DateLayout)
	reqs, err := u.requests.ListByAppointmentDate(ctx, today, today)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(reqs, func(r entities.RepairRequest) bool {
		return r.Appointment == nil || r.Status == entities.RepairStatusCancelled
	}), nil
}

// Export writes every report as a sheet of one workbook.
func (u *ReportUseCase) Export(ctx context.Context, w io.Writer) error {
	all, err := u.requests.ListAll(ctx)
	if err != nil {
		return err
	}
	pending, err := u.Pending(ctx)
	if err != nil {
		return err
	}

	rw := u.newWriter()
	defer rw.Close()

	brands := brandReports(all)
	brandRows := make([][]any, 0, len(brands))
	for _, b := range brands {
		brandRows = append(brandRows, []any{b.Brand, b.Requests, b.Revenue.InexactFloat64(), b.AvgQuoted.InexactFloat64()})
	}
	services := serviceReports(all)
	serviceRows := make([][]any, 0, len(services))
	for _, s := range services {
		serviceRows = append(serviceRows, []any{s.ServiceName, s.Count, s.AvgQuoted.InexactFloat64()})
	}
	pendingRows := make([][]any, 0, len(pending))
	for _, r := range pending {
		pendingRows = append(pendingRows, []any{
			r.ID, r.Customer.FullName(), r.Customer.Email, r.Device.Brand, r.Device.Model,
			string(r.ServiceType), string(r.Status), r.TotalQuotedPrice.InexactFloat64(),
			r.SubmittedAt.Format(time.RFC3339),
		})
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{"Brands", []string{"Brand", "Requests", "Revenue", "Avg quoted"}, brandRows},
		{"Services", []string{"Service", "Count", "Avg quoted"}, serviceRows},
		{"Pending", []string{"ID", "Customer", "Email", "Brand", "Model", "Service type", "Status", "Quoted", "Submitted"}, pendingRows},
	}
	for _, s := range sheets {
		if err := rw.AddSheet(s.name); err != nil {
			return err
		}
		if err := rw.WriteHeader(s.name, s.headers); err != nil {
			return err
		}
		for i, row := range s.rows {
			if err := rw.WriteRow(s.name, i+2, row); err != nil {
				return err
			}
		}
	}
	return rw.Save(w)
}
