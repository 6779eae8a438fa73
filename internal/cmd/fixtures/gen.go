package fixtures

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/turbolytics/scrivener/pkg/csv"
)

type sale struct {
	ID     string
	Date   string
	Amount string
	Region string
}

var saleSchema = csv.Schema[sale]{
	{
		Position: 0,
		Name:     "id",
		Required: true,
		Get:      func(s *sale) string { return s.ID },
	},
	{
		Position: 1,
		Name:     "sale_date",
		Type:     csv.FieldDate,
		Get:      func(s *sale) string { return s.Date },
	},
	{
		Position: 2,
		Name:     "amount",
		Type:     csv.FieldNumeric,
		Get:      func(s *sale) string { return s.Amount },
	},
	{
		Position: 3,
		Name:     "region",
		Get:      func(s *sale) string { return s.Region },
	},
}

var regions = []string{"north", "south", "east", "west"}

func newGenerateCommand() *cobra.Command {
	var records int
	var out string

	var cmd = &cobra.Command{
		Use:   "generate",
		Short: "Generates a sample delimited file for testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			sales := make([]sale, records)
			for i := range sales {
				sales[i] = sale{
					ID:     uuid.NewString(),
					Date:   time.Now().AddDate(0, 0, -rand.Intn(365)).Format("2006-01-02"),
					Amount: strconv.FormatFloat(rand.Float64()*1000, 'f', 2, 64),
					Region: regions[rand.Intn(len(regions))],
				}
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := csv.EncodeAll(f, saleSchema, sales); err != nil {
				return err
			}

			fmt.Printf("wrote %d records to %s\n", records, out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&records, "records", "n", 100, "Number of records to generate")
	cmd.Flags().StringVarP(&out, "out", "o", "fixtures.csv", "Output file")

	return cmd
}
