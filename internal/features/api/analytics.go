package api

import "context"

// Analytics returns aggregate figures for the given period
// ("today", "week", "month").
func (c *Client) Analytics(ctx context.Context, period string) (AnalyticsData, error) {
	var data AnalyticsData
	if err := c.Get(ctx, adminBase+"/analytics?period="+period, &data); err != nil {
		return AnalyticsData{}, err
	}
	return data, nil
}

func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := c.Get(ctx, adminBase+"/dashboard/stats", &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
