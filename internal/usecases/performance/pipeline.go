package performance

import (
	"github.com/vfg2006/admin-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const affiliateStatsField = "affiliateStats"

// BuildJoinPipeline casa o usuário, junta o affiliate stat pelo userId e
// achata a lista. Sem stat o unwind remove o documento.
func BuildJoinPipeline(userID primitive.ObjectID) domain.Pipeline {
	return domain.Pipeline{
		domain.MatchStage{ID: userID},
		domain.LookupStage{
			From:         domain.CollectionAffiliateStats,
			LocalField:   "_id",
			ForeignField: "userId",
			As:           affiliateStatsField,
		},
		domain.UnwindStage{Path: affiliateStatsField},
	}
}
