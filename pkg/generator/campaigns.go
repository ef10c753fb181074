package generator

import (
	"fmt"

	"github.com/nourishbox/nourishbox-data/pkg/catalog"
	"github.com/nourishbox/nourishbox-data/pkg/models"
)

// generateCampaigns produces one to three marketing campaigns per month
// over the whole window. Funnel counts are drawn independently; there is
// no causal link between campaigns and actual customer acquisition.
func (g *Generator) generateCampaigns() []models.Campaign {
	var campaigns []models.Campaign
	nextID := 1

	for cur := monthStart(g.cfg.WindowStart); !cur.After(g.cfg.WindowEnd); cur = cur.AddDate(0, 1, 0) {
		count := g.rng.IntBetween(1, 3)

		for i := 0; i < count; i++ {
			campaignType := Choice(g.rng, catalog.CampaignTypes)
			start := cur.AddDate(0, 0, g.rng.IntBetween(0, 28))
			end := start.AddDate(0, 0, g.rng.IntBetween(7, 30))
			if end.After(g.cfg.WindowEnd) {
				end = g.cfg.WindowEnd
			}

			budget := round2(g.rng.Uniform(500, 10000))

			offerValue := 0
			if g.rng.Float64() > 0.3 {
				offerValue = Choice(g.rng, catalog.OfferValues)
			}

			impressions := g.rng.IntBetween(10000, 500000)
			clicks := g.rng.IntBetween(100, 20000)
			conversions := g.rng.IntBetween(10, 500)

			c := models.Campaign{
				CampaignID:     fmt.Sprintf("CAMP%05d", nextID),
				CampaignName:   fmt.Sprintf("%s - %s", titleCase(campaignType), start.Format("Jan 2006")),
				CampaignType:   campaignType,
				StartDate:      start,
				EndDate:        end,
				Budget:         budget,
				TargetAudience: Choice(g.rng, catalog.TargetAudiences),
				OfferType:      Choice(g.rng, catalog.OfferTypes),
				OfferValue:     offerValue,
				Impressions:    impressions,
				Clicks:         clicks,
				Conversions:    conversions,
			}
			c.CTR = round2(float64(c.Clicks) / float64(c.Impressions) * 100)
			c.ConversionRate = round2(float64(c.Conversions) / float64(c.Clicks) * 100)
			c.CostPerAcquisition = round2(c.Budget / float64(c.Conversions))

			campaigns = append(campaigns, c)
			nextID++
		}
	}

	return campaigns
}
