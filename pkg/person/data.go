package person

// Source pools for the default field strategy. Surnames follow the common
// high-frequency ordering; given name characters are split by the gender
// they conventionally appear in.

var surnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "黄", "赵", "吴", "周",
	"徐", "孙", "马", "朱", "胡", "郭", "何", "林", "高", "罗",
	"郑", "梁", "谢", "宋", "唐", "许", "韩", "冯", "邓", "曹",
	"彭", "曾", "肖", "田", "董", "袁", "潘", "于", "蒋", "蔡",
	"余", "杜", "叶", "程", "苏", "魏", "吕", "丁", "任", "沈",
	"姚", "卢", "姜", "崔", "钟", "谭", "陆", "汪", "范", "金",
}

var givenMale = []string{
	"伟", "强", "磊", "军", "洋", "勇", "杰", "涛", "超", "明",
	"刚", "平", "辉", "鹏", "华", "飞", "鑫", "波", "斌", "宇",
	"浩", "凯", "健", "俊", "帆", "龙", "亮", "成", "建", "峰",
}

var givenFemale = []string{
	"芳", "娜", "敏", "静", "丽", "艳", "娟", "霞", "秀", "婷",
	"玉", "萍", "红", "玲", "桂", "丹", "莉", "梅", "琳", "雪",
	"欣", "妍", "洁", "燕", "云", "莹", "倩", "怡", "璐", "晨",
}

var phonePrefixes = []string{
	"130", "131", "132", "133", "135", "136", "137", "138", "139",
	"150", "151", "152", "155", "156", "157", "158", "159",
	"170", "176", "177", "178",
	"180", "181", "182", "183", "185", "186", "187", "188", "189",
	"191", "198", "199",
}

var emailDomains = []string{
	"qq.com", "163.com", "126.com", "sina.com", "sohu.com",
	"gmail.com", "outlook.com", "foxmail.com",
}

var streetNames = []string{
	"人民", "中山", "解放", "建设", "和平", "新华", "文化", "朝阳",
	"胜利", "光明", "幸福", "长江", "黄河", "青年", "育才", "振兴",
}

var streetSuffixes = []string{"路", "街", "大道", "东路", "西路", "南路", "北路"}
