// Package feast 把 Feast Feature Store 适配为决策引擎的画像来源。
//
// 画像特征存放在 skin_profile 特征视图下，实体键为 user_id。
// 本包只做"在线特征 → UserVector"的翻译，特征的注册与物化由
// 画像侧的 Feast 工程负责。
//
// 参考：https://github.com/feast-dev/feast
package feast

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	feastsdk "github.com/feast-dev/feast/sdk/go"
	feasttypes "github.com/feast-dev/feast/sdk/go/protos/feast/types"

	"github.com/rushteam/skinkit/core"
)

// skin_profile 特征视图下的特征名。
// 多值字段（肤质、诉求）以 CSV 存储，goals 的单项格式为 dimension:priority。
const (
	featureSkinTypes      = "skin_profile:skin_types"
	featureBarrier        = "skin_profile:barrier"
	featureBudgetMonthly  = "skin_profile:budget_monthly"
	featureBudgetStrategy = "skin_profile:budget_strategy"
	featureGoals          = "skin_profile:goals"
	featureWeightRED      = "skin_profile:weight_red"
	featureWeightReddit   = "skin_profile:weight_reddit"
	featureEnvStress      = "skin_profile:env_stress"
)

var profileFeatures = []string{
	featureSkinTypes,
	featureBarrier,
	featureBudgetMonthly,
	featureBudgetStrategy,
	featureGoals,
	featureWeightRED,
	featureWeightReddit,
	featureEnvStress,
}

// onlineClient 是对官方 SDK gRPC 客户端的最小依赖面。
type onlineClient interface {
	GetOnlineFeatures(ctx context.Context, req *feastsdk.OnlineFeaturesRequest) (*feastsdk.OnlineFeaturesResponse, error)
}

// ProfileSource 基于 Feast 在线特征构造用户画像，实现 core.ProfileSource。
type ProfileSource struct {
	client  onlineClient
	project string
}

// NewProfileSource 连接 Feast Feature Server（gRPC，默认端口 6565）。
func NewProfileSource(host string, port int, project string) (*ProfileSource, error) {
	if port == 0 {
		port = 6565
	}
	client, err := feastsdk.NewGrpcClient(host, port)
	if err != nil {
		return nil, fmt.Errorf("feast grpc client: %w", err)
	}
	return &ProfileSource{client: client, project: project}, nil
}

func (s *ProfileSource) Name() string { return "feast" }

// GetUserVector 拉取单个用户的在线特征并翻译为 UserVector。
// Feast 里没有该用户的任何画像特征时返回 NOT_FOUND。
func (s *ProfileSource) GetUserVector(ctx context.Context, userID string) (*core.UserVector, error) {
	if userID == "" {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeInvalidInput, "profile: user id is required")
	}

	req := &feastsdk.OnlineFeaturesRequest{
		Features: profileFeatures,
		Entities: []feastsdk.Row{
			{"user_id": feastsdk.StrVal(userID)},
		},
		Project: s.project,
	}

	resp, err := s.client.GetOnlineFeatures(ctx, req)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeUnavailable, "profile: feast online features: "+err.Error())
	}

	rows := resp.Rows()
	if len(rows) == 0 {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeNotFound, "profile: user not found: "+userID)
	}

	values := make(map[string]interface{}, len(profileFeatures))
	for _, name := range profileFeatures {
		if v, ok := rows[0][name]; ok {
			if decoded := valueOf(v); decoded != nil {
				values[name] = decoded
			}
		}
	}
	if len(values) == 0 {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeNotFound, "profile: user not found: "+userID)
	}

	return buildUserVector(values), nil
}

// valueOf 把 Feast 的 protobuf Value 解包为 Go 原生值；空值返回 nil。
func valueOf(v *feasttypes.Value) interface{} {
	if v == nil {
		return nil
	}
	switch t := v.Val.(type) {
	case *feasttypes.Value_StringVal:
		return t.StringVal
	case *feasttypes.Value_Int32Val:
		return float64(t.Int32Val)
	case *feasttypes.Value_Int64Val:
		return float64(t.Int64Val)
	case *feasttypes.Value_FloatVal:
		return float64(t.FloatVal)
	case *feasttypes.Value_DoubleVal:
		return t.DoubleVal
	case *feasttypes.Value_BoolVal:
		return t.BoolVal
	case *feasttypes.Value_BytesVal:
		return string(t.BytesVal)
	default:
		return nil
	}
}

// buildUserVector 把解包后的特征值组装成 UserVector。
// 缺失字段保持零值，交由打分引擎的兜底逻辑处理。
func buildUserVector(values map[string]interface{}) *core.UserVector {
	u := &core.UserVector{}

	if s, ok := values[featureSkinTypes].(string); ok {
		u.SkinTypes = parseSkinTypes(s)
	}
	if s, ok := values[featureBarrier].(string); ok && s == string(core.BarrierImpaired) {
		u.Barrier = core.BarrierImpaired
	} else {
		u.Barrier = core.BarrierHealthy
	}
	if f, ok := values[featureBudgetMonthly].(float64); ok {
		u.Budget.Monthly = f
	}
	if s, ok := values[featureBudgetStrategy].(string); ok {
		u.Budget.Strategy = s
	}
	if s, ok := values[featureGoals].(string); ok {
		u.Goals = parseGoals(s)
	}

	weights := make(map[core.Platform]float64, 2)
	if f, ok := values[featureWeightRED].(float64); ok {
		weights[core.PlatformRED] = f
	}
	if f, ok := values[featureWeightReddit].(float64); ok {
		weights[core.PlatformReddit] = f
	}
	if len(weights) > 0 {
		u.PlatformWeights = weights
	}

	if f, ok := values[featureEnvStress].(float64); ok {
		stress := f
		u.EnvStress = &stress
	}
	return u
}

// parseSkinTypes 解析 CSV 肤质列表，如 "oily,sensitive"。
func parseSkinTypes(s string) []core.SkinType {
	var out []core.SkinType
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, core.SkinType(part))
	}
	return out
}

// parseGoals 解析 CSV 诉求列表，单项为 dimension:priority，如 "redness:1,acne:2"。
// priority 缺失或非法时按 1 处理。
func parseGoals(s string) []core.Goal {
	var out []core.Goal
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dim := part
		priority := 1
		if idx := strings.LastIndex(part, ":"); idx > 0 {
			dim = strings.TrimSpace(part[:idx])
			if p, err := strconv.Atoi(strings.TrimSpace(part[idx+1:])); err == nil && p > 0 {
				priority = p
			}
		}
		if dim == "" {
			continue
		}
		out = append(out, core.Goal{Dimension: dim, Priority: priority})
	}
	return out
}

// 确保 ProfileSource 实现了 core.ProfileSource 接口
var _ core.ProfileSource = (*ProfileSource)(nil)
