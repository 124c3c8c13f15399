package storage

import (
	"time"

	"github.com/shiren23/focusflow/internal/model"
)

// DefaultCategories seeds the category list for first runs.
var DefaultCategories = []string{"学习", "技能", "运动", "职务"}

// SampleTasks is the starter task set returned when no task data has been
// stored yet. One task per quadrant, one already overdue.
func SampleTasks(now time.Time) []model.Task {
	tomorrow := now.Add(24 * time.Hour)
	anHourAgo := now.Add(-time.Hour)
	return []model.Task{
		{
			ID:       "1",
			Title:    "完成项目架构设计",
			Category: "职务",
			Priority: model.PriorityUrgentImportant,
			Deadline: &tomorrow,
			Repeat:   model.RepeatNone,
			SubTasks: []model.SubTask{
				{ID: "s1", Text: "定义数据接口", Completed: true},
				{ID: "s2", Text: "画组件图", Completed: false},
			},
			Note:        "# 设计文档\n- 需要包含组件图\n- 数据流定义",
			Attachments: []model.Attachment{},
			Status:      model.StatusInProgress,
			CreatedAt:   model.MillisFrom(now),
		},
		{
			ID:          "2",
			Title:       "阅读《深度工作》",
			Category:    "学习",
			Priority:    model.PriorityImportant,
			Repeat:      model.RepeatDaily,
			SubTasks:    []model.SubTask{},
			Note:        "每天阅读 30 分钟",
			Attachments: []model.Attachment{},
			Status:      model.StatusTodo,
			CreatedAt:   model.MillisFrom(now),
		},
		{
			ID:          "3",
			Title:       "回复客户邮件",
			Category:    "职务",
			Priority:    model.PriorityUrgent,
			Deadline:    &anHourAgo,
			Repeat:      model.RepeatNone,
			SubTasks:    []model.SubTask{},
			Note:        "",
			Attachments: []model.Attachment{},
			Status:      model.StatusTodo,
			CreatedAt:   model.MillisFrom(now),
		},
		{
			ID:          "4",
			Title:       "整理桌面",
			Category:    "生活",
			Priority:    model.PriorityNeither,
			Repeat:      model.RepeatWeekly,
			SubTasks:    []model.SubTask{},
			Note:        "",
			Attachments: []model.Attachment{},
			Status:      model.StatusDone,
			CreatedAt:   model.MillisFrom(now),
		},
	}
}
