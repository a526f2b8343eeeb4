package memory

import (
	"github.com/geomap-asset/backend/pkg/catalog"
)

// SeedAssets returns the demo catalog used by the memory store. The data
// spans all three graphic types, every lifecycle status, and a mix of
// mounted and unmounted coordinates, so every derived view has something
// to show out of the box.
func SeedAssets() []catalog.Asset {
	return []catalog.Asset{
		{
			ID:              "1",
			Title:           "萨尔图油气藏北一区构造精细解释图",
			Category:        "勘探图件",
			Profession:      "地质",
			Oilfield:        "萨尔图",
			Stage:           "开发阶段",
			SpatialRelation: catalog.SpatialSubsurface,
			GraphicType:     catalog.GraphicStatic,
			Thumbnail:       "https://picsum.photos/seed/geo_update_v2/600/400",
			Version:         "V2.1",
			Status:          catalog.StatusPublished,
			Tags:            []string{"构造", "三维精细解释", "权威发布"},
			Format:          "TIFF (高清)",
			CreationTime:    "2023-09-12",
			LastUpdate:      "2023-10-24",
			ConstructionType: "地质构造类",
			FigureNote:      "图中展示了萨尔图油田北一区主力油层高台子组的顶面构造特征。主断层呈北北东走向，落差在 20-50m 之间。井位分布密集，显示了二次加密后的注采网格形态。",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "北一区构造带",
				Business:   "产能建设",
				Work:       "方案编制",
				Profession: "地质工程",
				Process:    "成果归档",
			},
		},
		{
			ID:              "2",
			Title:           "JZ9-3油气藏注采平衡动态分析图 V3",
			Category:        "监测图件",
			Profession:      "油藏工程",
			Oilfield:        "JZ9-3",
			Stage:           "生产阶段",
			SpatialRelation: catalog.SpatialUnderwater,
			GraphicType:     catalog.GraphicDynamic,
			Thumbnail:       "https://picsum.photos/seed/dyn1/600/400",
			Version:         "V3.0",
			Status:          catalog.StatusReview,
			Tags:            []string{"注采平衡", "动态分析", "安全规范"},
			Format:          "DWG / SVG",
			CreationTime:    "2023-10-28",
			LastUpdate:      "2023-11-02",
			ConstructionType: "生产监测类",
			FigureNote:      "实时监控图展示了 JZ9-3 区块 101 井组的注采平衡状况。目前该井组整体处于注采平衡状态，各单井压力波动在正常设计范围内。",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "JZ9-3-101 井组",
				Business:   "油藏管理",
				Work:       "动态监测",
				Profession: "油藏开发",
				Process:    "专家评审",
			},
		},
		{
			ID:              "3",
			Title:           "顺北5号油气藏地下裂缝发育模型",
			Category:        "开发模型",
			Profession:      "地球物理",
			Oilfield:        "顺北5号",
			Stage:           "评价阶段",
			SpatialRelation: catalog.SpatialSubsurface,
			GraphicType:     catalog.GraphicDataVolume,
			Thumbnail:       "https://picsum.photos/seed/vol1/600/400",
			Version:         "V1.5",
			Status:          catalog.StatusDraft,
			Tags:            []string{"裂缝建模", "数值模拟"},
			Format:          "DAT (三维体数据)",
			CreationTime:    "2023-11-01",
			LastUpdate:      "2023-11-15",
			ConstructionType: "储层描述类",
			FigureNote:      "顺北5号断裂带裂缝发育模型，展示了多级次裂缝的交织网络。该区域裂缝密度随深度增加呈指数级衰减，但断裂带核心区仍保持较高的导通性。",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "顺北5号深层储层",
				Business:   "储层评价",
				Work:       "数值建模",
				Profession: "地球物理",
				Process:    "初步解释",
			},
		},
		{
			ID:              "4",
			Title:           "威远区块页岩气水平井轨迹综合展示图",
			Category:        "工程设计",
			Profession:      "钻井工程",
			Oilfield:        "威远-长宁",
			Stage:           "开发阶段",
			SpatialRelation: catalog.SpatialSubsurface,
			WellID:          "W-204H",
			GraphicType:     catalog.GraphicStatic,
			Thumbnail:       "https://picsum.photos/seed/drill1/600/400",
			Version:         "V1.0",
			Status:          catalog.StatusPublished,
			Tags:            []string{"页岩气", "水平井", "轨迹优化"},
			Format:          "PDF / SVG",
			CreationTime:    "2023-12-20",
			LastUpdate:      "2024-01-10",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "W-204H 井",
				Business:   "产能建设",
				Work:       "钻井设计",
				Profession: "钻井工程",
				Process:    "成果发布",
			},
		},
		{
			ID:              "5",
			Title:           "渤海海域中心平台实时管线压力监测",
			Category:        "生产运行",
			Profession:      "配管",
			Oilfield:        "渤海湾",
			Stage:           "生产阶段",
			SpatialRelation: catalog.SpatialSurface,
			GraphicType:     catalog.GraphicDynamic,
			Thumbnail:       "https://picsum.photos/seed/pipe1/600/400",
			Version:         "Live",
			Status:          catalog.StatusPublished,
			Tags:            []string{"实时监测", "管线安全", "物联网"},
			Format:          "WebSocket Stream",
			CreationTime:    "2024-02-01",
			LastUpdate:      "2024-02-05",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "中心平台集输系统",
				Business:   "日常生产",
				Work:       "运行控制",
				Profession: "储运工程",
				Process:    "实时监控",
			},
		},
		{
			ID:              "6",
			Title:           "哈拉哈塘三维波阻抗反演体数据包",
			Category:        "物探成果",
			Profession:      "地球物理",
			Oilfield:        "哈拉哈塘",
			Stage:           "评价阶段",
			SpatialRelation: catalog.SpatialSubsurface,
			GraphicType:     catalog.GraphicDataVolume,
			Thumbnail:       "https://picsum.photos/seed/seismic1/600/400",
			Version:         "V2.2",
			Status:          catalog.StatusPublished,
			Tags:            []string{"波阻抗反演", "储层预测", "高分辨率"},
			Format:          "SGY / GDB",
			CreationTime:    "2023-11-20",
			LastUpdate:      "2023-12-18",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "哈拉哈塘东部区块",
				Business:   "目标选址",
				Work:       "地震解释",
				Profession: "地球物理",
				Process:    "正式入库",
			},
		},
		{
			ID:              "7",
			Title:           "胜利东部老区高分辨率层序地层剖面",
			Category:        "地质剖面",
			Profession:      "地质",
			Oilfield:        "胜利东部",
			Stage:           "评价阶段",
			SpatialRelation: catalog.SpatialSubsurface,
			GraphicType:     catalog.GraphicStatic,
			Thumbnail:       "https://picsum.photos/seed/geo2/600/400",
			Version:         "V1.1",
			Status:          catalog.StatusPublished,
			Tags:            []string{"地层剖面", "老区评价", "层序地层"},
			Format:          "TIFF / JPG",
			CreationTime:    "2024-02-15",
			LastUpdate:      "2024-03-12",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "胜利东部断陷带",
				Business:   "潜力评估",
				Work:       "地层对比",
				Profession: "石油地质",
				Process:    "成果发布",
			},
		},
		{
			ID:              "8",
			Title:           "大庆油田地面管网拓扑结构图 2024",
			Category:        "地面工程",
			Profession:      "配管",
			Oilfield:        "大庆",
			Stage:           "开发阶段",
			SpatialRelation: catalog.SpatialGround,
			GraphicType:     catalog.GraphicStatic,
			Thumbnail:       "https://picsum.photos/seed/infra1/600/400",
			Version:         "V4.0",
			Status:          catalog.StatusPublished,
			Tags:            []string{"地面管网", "拓扑结构", "GIS", "数字化转型"},
			Format:          "SHP / DXF",
			CreationTime:    "2024-02-10",
			LastUpdate:      "2024-03-01",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "地面集输系统",
				Business:   "规划设计",
				Work:       "数字化建模",
				Profession: "地面工程",
				Process:    "正式归档",
			},
		},
		{
			ID:              "9",
			Title:           "顺北4号断裂带构造应力场模拟动画",
			Category:        "模拟动画",
			Profession:      "地质",
			Oilfield:        "顺北5号",
			Stage:           "评价阶段",
			SpatialRelation: catalog.SpatialSubsurface,
			GraphicType:     catalog.GraphicDynamic,
			Thumbnail:       "https://picsum.photos/seed/anim1/600/400",
			Version:         "V2.0",
			Status:          catalog.StatusReview,
			Tags:            []string{"应力场模拟", "断裂演化", "有限元分析"},
			Format:          "MP4 / GLB",
			CreationTime:    "2024-01-15",
			LastUpdate:      "2024-02-28",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "4号断裂带",
				Business:   "地质研究",
				Work:       "构造模拟",
				Profession: "地质力学",
				Process:    "专家评审",
			},
		},
		{
			ID:              "10",
			Title:           "长庆安塞油田注水井组动态分析看板",
			Category:        "仪表盘",
			Profession:      "油藏工程",
			Oilfield:        "安塞",
			Stage:           "生产阶段",
			SpatialRelation: catalog.SpatialGround,
			GraphicType:     catalog.GraphicDynamic,
			Thumbnail:       "https://picsum.photos/seed/dash1/600/400",
			Version:         "Daily",
			Status:          catalog.StatusPublished,
			Tags:            []string{"水驱开发", "注采指标", "数据可视化"},
			Format:          "Web Dashboard",
			CreationTime:    "2024-03-01",
			LastUpdate:      "2024-03-18",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "安塞塞15井区",
				Business:   "油藏管理",
				Work:       "动态分析",
				Profession: "油藏开发",
				Process:    "日常生产",
			},
		},
		{
			ID:              "11",
			Title:           "塔里木哈6井钻井井身结构设计图",
			Category:        "工程图纸",
			Profession:      "钻井工程",
			Oilfield:        "哈拉哈塘",
			Stage:           "勘探阶段",
			SpatialRelation: catalog.SpatialSubsurface,
			WellID:          "HA-6",
			GraphicType:     catalog.GraphicStatic,
			Thumbnail:       "https://picsum.photos/seed/well1/600/400",
			Version:         "V1.0",
			Status:          catalog.StatusPublished,
			Tags:            []string{"井身结构", "套管设计", "标准化图件"},
			Format:          "DWG / PDF",
			CreationTime:    "2023-08-20",
			LastUpdate:      "2023-09-05",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "哈6井",
				Business:   "产能建设",
				Work:       "工程设计",
				Profession: "钻井工程",
				Process:    "正式入库",
			},
		},
		{
			ID:              "12",
			Title:           "深层碳酸盐岩缝洞型储层精细描述体",
			Category:        "三维模型",
			Profession:      "地质",
			Oilfield:        "顺北核心",
			Stage:           "开发阶段",
			SpatialRelation: catalog.SpatialSubsurface,
			GraphicType:     catalog.GraphicDataVolume,
			Thumbnail:       "https://picsum.photos/seed/res_model1/600/400",
			Version:         "V3.1",
			Status:          catalog.StatusPublished,
			Tags:            []string{"缝洞型储层", "三维精细描述", "储层非均质性"},
			Format:          "GOCAD / Petrel",
			CreationTime:    "2024-01-10",
			LastUpdate:      "2024-02-12",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "顺北核心区块储层",
				Business:   "油藏描述",
				Work:       "地质建模",
				Profession: "地质工程",
				Process:    "正式归档",
			},
		},
		{
			ID:              "13",
			Title:           "顺北断裂带高空无人机巡检正射影像",
			Category:        "巡检影像",
			Profession:      "工程管理",
			Oilfield:        "顺北",
			Stage:           "运行维护",
			SpatialRelation: catalog.SpatialAerial,
			GraphicType:     catalog.GraphicStatic,
			Thumbnail:       "https://picsum.photos/seed/drone1/600/400",
			Version:         "V1.0",
			Status:          catalog.StatusPublished,
			Tags:            []string{"无人机", "正射影像", "高清巡检"},
			Format:          "GeoTIFF",
			CreationTime:    "2024-03-25",
			LastUpdate:      "2024-04-01",
			Coordinates5D: &catalog.Coordinates5D{
				Object:     "顺北管网区",
				Business:   "安全环保",
				Work:       "无人机巡检",
				Profession: "工程运维",
				Process:    "成果入库",
			},
		},
	}
}

// SeedScenarios returns the standard scenario definitions.
func SeedScenarios() []catalog.ScenarioDefinition {
	return []catalog.ScenarioDefinition{
		{
			ID:          "1",
			Name:        "新井评价会战",
			Icon:        "fa-droplet",
			Description: "针对新井评价阶段，聚合构造、沉积及储量相关图件，辅助钻探决策。",
			UpdatedAt:   "2024-03-20",
			Stages: []catalog.StageRule{
				{ID: "s1-1", Name: "地质背景认识", RequiredCategories: []string{"勘探图件", "地质剖面"}},
				{ID: "s1-2", Name: "储层精细评价", RequiredCategories: []string{"开发模型", "三维模型", "物探成果"}},
				{ID: "s1-3", Name: "井位部署决策", RequiredCategories: []string{"工程设计", "工程图纸"}},
			},
		},
		{
			ID:          "2",
			Name:        "老区挖潜综合治理",
			Icon:        "fa-layer-group",
			Description: "针对高含水期油田，重点展示注采关系、剩余油分布及调整方案。",
			UpdatedAt:   "2024-03-15",
			Stages: []catalog.StageRule{
				{ID: "s2-1", Name: "生产现状诊断", RequiredCategories: []string{"生产运行", "监测图件", "仪表盘"}},
				{ID: "s2-2", Name: "剩余油分布研究", RequiredCategories: []string{"开发模型", "三维模型", "数据体图形"}},
				{ID: "s2-3", Name: "调整方案编制", RequiredCategories: []string{"工程设计", "地面工程"}},
			},
		},
		{
			ID:          "3",
			Name:        "地面工程优化",
			Icon:        "fa-network-wired",
			Description: "聚焦地面管网、集输系统及巡检影像，优化地面设施布局。",
			UpdatedAt:   "2024-02-10",
			Stages: []catalog.StageRule{
				{ID: "s3-1", Name: "现状拓扑分析", RequiredCategories: []string{"地面工程", "生产运行"}},
				{ID: "s3-2", Name: "现场巡检反馈", RequiredCategories: []string{"巡检影像"}},
			},
		},
	}
}
