package services_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	pipelineerrors "retail-analytics/internal/errors"
	"retail-analytics/internal/models"
	"retail-analytics/internal/repositories/repository_mocks"
	"retail-analytics/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CleaningServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	cleaningService services.CleaningServiceInterface
	orderRepo       *repository_mocks.MockOrderRepositoryInterface
}

func TestCleaningServiceSuite(t *testing.T) {
	suite.Run(t, new(CleaningServiceTestSuite))
}

func (s *CleaningServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orderRepo = repository_mocks.NewMockOrderRepositoryInterface(s.ctrl)
	s.cleaningService = services.NewCleaningService(s.orderRepo)
}

func (s *CleaningServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func rawRow(invoiceNo, stockCode, description string, quantity int64, price, date, customerID, country string) models.RawTransaction {
	return models.RawTransaction{
		InvoiceNo:   invoiceNo,
		StockCode:   stockCode,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   decimal.RequireFromString(price),
		InvoiceDate: date,
		CustomerID:  customerID,
		Country:     country,
	}
}

func (s *CleaningServiceTestSuite) TestCleaningService_Clean_ValidRow_AllFieldsConverted() {
	raw := []models.RawTransaction{
		rawRow("536365", "85123A", "WHITE HANGING HEART T-LIGHT HOLDER", 6, "2.55", "01/12/2010 08:26", "17850", "United Kingdom"),
	}

	cleaned, err := s.cleaningService.Clean(raw)
	s.Require().NoError(err)
	s.Require().Len(cleaned, 1)

	row := cleaned[0]
	s.Equal("536365", row.InvoiceNo)
	s.Equal("85123A", row.StockCode)
	s.Equal(sql.NullString{String: "WHITE HANGING HEART T-LIGHT HOLDER", Valid: true}, row.Description)
	s.Equal(int64(6), row.Quantity)
	s.True(row.InvoiceDate.Equal(time.Date(2010, 12, 1, 8, 26, 0, 0, time.UTC)))
	s.Equal(sql.NullInt64{Int64: 17850, Valid: true}, row.CustomerID)
	s.Equal("United Kingdom", row.Country)
}

func (s *CleaningServiceTestSuite) TestCleaningService_Clean_ExactDuplicates_CollapseToOne() {
	row := rawRow("536365", "71053", "WHITE METAL LANTERN", 6, "3.39", "01/12/2010 08:26", "17850", "United Kingdom")
	raw := []models.RawTransaction{row, row, row}

	cleaned, err := s.cleaningService.Clean(raw)
	s.Require().NoError(err)
	s.Len(cleaned, 1)
}

func (s *CleaningServiceTestSuite) TestCleaningService_Clean_NearDuplicates_Survive() {
	base := rawRow("536365", "71053", "WHITE METAL LANTERN", 6, "3.39", "01/12/2010 08:26", "17850", "United Kingdom")
	differentQty := base
	differentQty.Quantity = 8

	cleaned, err := s.cleaningService.Clean([]models.RawTransaction{base, differentQty})
	s.Require().NoError(err)
	s.Len(cleaned, 2)
}

func (s *CleaningServiceTestSuite) TestCleaningService_Clean_MissingValuesNormalized() {
	raw := []models.RawTransaction{
		rawRow("536414", "22139", "", 56, "0.00", "01/12/2010 11:52", "", "United Kingdom"),
		rawRow("536414", "22139", "   ", 56, "0.00", "01/12/2010 11:52", "  ", "United Kingdom"),
	}

	cleaned, err := s.cleaningService.Clean(raw)
	s.Require().NoError(err)

	// Whitespace-only and empty normalize to the same missing marker, so
	// the two rows are exact duplicates after cleaning.
	s.Require().Len(cleaned, 1)
	s.False(cleaned[0].Description.Valid)
	s.False(cleaned[0].CustomerID.Valid)
}

func (s *CleaningServiceTestSuite) TestCleaningService_Clean_FloatCustomerIDCoerced() {
	raw := []models.RawTransaction{
		rawRow("536365", "84406B", "CREAM CUPID HEARTS COAT HANGER", 8, "2.75", "01/12/2010 08:26", "17850.0", "United Kingdom"),
	}

	cleaned, err := s.cleaningService.Clean(raw)
	s.Require().NoError(err)
	s.Require().Len(cleaned, 1)
	s.Equal(sql.NullInt64{Int64: 17850, Valid: true}, cleaned[0].CustomerID)
}

func (s *CleaningServiceTestSuite) TestCleaningService_Clean_MixedDateFormats() {
	raw := []models.RawTransaction{
		rawRow("536365", "85123A", "A", 1, "1.00", "2010-12-01 08:26:00", "17850", "United Kingdom"),
		rawRow("536366", "85123A", "A", 1, "1.00", "01/12/2010 08:28", "17850", "United Kingdom"),
		rawRow("536367", "85123A", "A", 1, "1.00", "9-12-2010 12:31", "17850", "United Kingdom"),
	}

	cleaned, err := s.cleaningService.Clean(raw)
	s.Require().NoError(err)
	s.Require().Len(cleaned, 3)
	s.Equal(time.December, cleaned[0].InvoiceDate.Month())
	s.Equal(time.December, cleaned[1].InvoiceDate.Month())
	s.Equal(9, cleaned[2].InvoiceDate.Day())
}

func (s *CleaningServiceTestSuite) TestCleaningService_Clean_BadDate_FailsWithContext() {
	raw := []models.RawTransaction{
		rawRow("536999", "85123A", "A", 1, "1.00", "not a date", "17850", "United Kingdom"),
	}

	_, err := s.cleaningService.Clean(raw)
	s.Require().Error(err)
	s.True(pipelineerrors.HasCode(err, pipelineerrors.ParseInvalidDate))
	s.Contains(err.Error(), "536999")
}

func (s *CleaningServiceTestSuite) TestCleaningService_Clean_FractionalCustomerID_Fails() {
	raw := []models.RawTransaction{
		rawRow("536365", "85123A", "A", 1, "1.00", "01/12/2010 08:26", "17850.5", "United Kingdom"),
	}

	_, err := s.cleaningService.Clean(raw)
	s.Require().Error(err)
	s.True(pipelineerrors.HasCode(err, pipelineerrors.ParseInvalidCustomerID))
}

func (s *CleaningServiceTestSuite) TestCleaningService_Clean_Idempotent() {
	raw := []models.RawTransaction{
		rawRow("536365", "85123A", "WHITE HANGING HEART T-LIGHT HOLDER", 6, "2.55", "01/12/2010 08:26", "17850", "United Kingdom"),
		rawRow("536365", "85123A", "WHITE HANGING HEART T-LIGHT HOLDER", 6, "2.55", "01/12/2010 08:26", "17850", "United Kingdom"),
		rawRow("536367", "84879", "ASSORTED COLOUR BIRD ORNAMENT", 32, "1.69", "01/12/2010 08:34", "13047", "United Kingdom"),
	}

	first, err := s.cleaningService.Clean(raw)
	s.Require().NoError(err)
	s.Require().Len(first, 2)

	// Feeding the cleaned output back through produces identical rows.
	asRaw := make([]models.RawTransaction, 0, len(first))
	for _, txn := range first {
		customer := ""
		if txn.CustomerID.Valid {
			customer = "17850"
			if txn.InvoiceNo == "536367" {
				customer = "13047"
			}
		}
		asRaw = append(asRaw, rawRow(
			txn.InvoiceNo, txn.StockCode, txn.Description.String,
			txn.Quantity, txn.UnitPrice.String(),
			txn.InvoiceDate.Format("2006-01-02 15:04:05"),
			customer, txn.Country))
	}

	second, err := s.cleaningService.Clean(asRaw)
	s.Require().NoError(err)
	s.Require().Len(second, 2)
	s.Equal(first[0].DedupKey(), second[0].DedupKey())
	s.Equal(first[1].DedupKey(), second[1].DedupKey())
}

func (s *CleaningServiceTestSuite) TestCleaningService_Run_Success() {
	raw := []models.RawTransaction{
		rawRow("536365", "85123A", "WHITE HANGING HEART T-LIGHT HOLDER", 6, "2.55", "01/12/2010 08:26", "17850", "United Kingdom"),
		rawRow("536365", "85123A", "WHITE HANGING HEART T-LIGHT HOLDER", 6, "2.55", "01/12/2010 08:26", "17850", "United Kingdom"),
	}

	s.orderRepo.EXPECT().GetRaw().Return(raw, nil).Times(1)
	s.orderRepo.EXPECT().ReplaceCleaned(gomock.Len(1)).Return(nil).Times(1)

	rowsIn, rowsOut, err := s.cleaningService.Run()
	s.NoError(err)
	s.Equal(int64(2), rowsIn)
	s.Equal(int64(1), rowsOut)
}

func (s *CleaningServiceTestSuite) TestCleaningService_Run_ReadFailure() {
	storeErr := pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, errors.New("disk gone"))
	s.orderRepo.EXPECT().GetRaw().Return(nil, storeErr).Times(1)

	_, _, err := s.cleaningService.Run()
	s.Require().Error(err)
	s.True(pipelineerrors.HasCode(err, pipelineerrors.StoreQueryFailed))
}

func (s *CleaningServiceTestSuite) TestCleaningService_Run_ReplaceFailure() {
	raw := []models.RawTransaction{
		rawRow("536365", "85123A", "A", 6, "2.55", "01/12/2010 08:26", "17850", "United Kingdom"),
	}
	storeErr := pipelineerrors.Wrap(pipelineerrors.StoreWriteFailed, errors.New("insert failed"))

	s.orderRepo.EXPECT().GetRaw().Return(raw, nil).Times(1)
	s.orderRepo.EXPECT().ReplaceCleaned(gomock.Any()).Return(storeErr).Times(1)

	rowsIn, rowsOut, err := s.cleaningService.Run()
	s.Require().Error(err)
	s.Equal(int64(1), rowsIn)
	s.Equal(int64(0), rowsOut)
}
