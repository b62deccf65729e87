package vocab

// Seed is the built-in starter catalog, used when no master list has
// been imported yet. Frequency ranks follow the NIKL frequency list.
var Seed = []Word{
	{ID: "w001", Korean: "사랑", Meaning: "爱", MeaningEn: "love", Romanization: "sarang", Frequency: 120, POS: POSNoun, Level: LevelA},
	{ID: "w002", Korean: "하다", Meaning: "做", MeaningEn: "to do", Romanization: "hada", Frequency: 1, POS: POSVerb, Level: LevelA},
	{ID: "w003", Korean: "사람", Meaning: "人", MeaningEn: "person", Romanization: "saram", Frequency: 9, POS: POSNoun, Level: LevelA},
	{ID: "w004", Korean: "먹다", Meaning: "吃", MeaningEn: "to eat", Romanization: "meokda", Frequency: 147, POS: POSVerb, Level: LevelA},
	{ID: "w005", Korean: "물", Meaning: "水", MeaningEn: "water", Romanization: "mul", Frequency: 230, POS: POSNoun, Level: LevelA},
	{ID: "w006", Korean: "크다", Meaning: "大", MeaningEn: "big", Romanization: "keuda", Frequency: 82, POS: POSAdjective, Level: LevelA},
	{ID: "w007", Korean: "빨리", Meaning: "快", MeaningEn: "quickly", Romanization: "ppalli", Frequency: 410, POS: POSAdverb, Level: LevelA},
	{ID: "w008", Korean: "학교", Meaning: "学校", MeaningEn: "school", Romanization: "hakgyo", Frequency: 180, POS: POSNoun, Level: LevelA},
	{ID: "w009", Korean: "친구", Meaning: "朋友", MeaningEn: "friend", Romanization: "chingu", Frequency: 156, POS: POSNoun, Level: LevelA},
	{ID: "w010", Korean: "배", Meaning: "肚子", MeaningEn: "belly", Romanization: "bae", Frequency: 520, POS: POSNoun, Level: LevelA},
	{ID: "w011", Korean: "배", Meaning: "梨", MeaningEn: "pear", Romanization: "bae", Frequency: 1480, POS: POSNoun, Level: LevelB},
	{ID: "w012", Korean: "배", Meaning: "船", MeaningEn: "boat", Romanization: "bae", Frequency: 690, POS: POSNoun, Level: LevelA},
	{ID: "w013", Korean: "마음", Meaning: "心", MeaningEn: "heart, mind", Romanization: "maeum", Frequency: 66, POS: POSNoun, Level: LevelA},
	{ID: "w014", Korean: "어렵다", Meaning: "难", MeaningEn: "difficult", Romanization: "eoryeopda", Frequency: 345, POS: POSAdjective, Level: LevelB},
	{ID: "w015", Korean: "천천히", Meaning: "慢慢地", MeaningEn: "slowly", Romanization: "cheoncheonhi", Frequency: 890, POS: POSAdverb, Level: LevelB},
	{ID: "w016", Korean: "하나", Meaning: "一", MeaningEn: "one", Romanization: "hana", Frequency: 95, POS: POSNumeral, Level: LevelA},
}
