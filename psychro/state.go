package psychro

// 解決済みの湿り空気状態。
// StateFromXX 系のコンストラクタのみが生成し、生成後は変更しない。
type AirState struct {
	TDB float64 //1.乾球温度 [℃]
	TWB float64 //2.湿球温度 [℃]
	TDP float64 //3.露点温度 [℃]
	RH  float64 //4.相対湿度 [0-1]
	W   float64 //5.絶対湿度 [kg/kg(DA)]
	H   float64 //6.比エンタルピー [kJ/kg(DA)]
	V   float64 //7.比容積 [m3/kg(DA)]
	Pw  float64 //8.水蒸気分圧 [Pa]
	Pws float64 //9.飽和水蒸気圧 [Pa]
	P   float64 //10.大気圧 [Pa]
}

// 湿り空気の密度 [kg/m3]
func (s AirState) Density() float64 {
	return (1 + s.W) / s.V
}

// 湿り空気の定圧比熱 [kJ/(kg(DA)・K)]。
// エンタルピー式の温度勾配と一致する（絶対湿度一定の顕熱変化と整合）。
func (s AirState) Cp() float64 {
	return CpDA + CpWV*s.W
}

// ラベル付けした状態の集合。帳票・チャート連携用。
// 挿入順を保持し、同一ラベルへの再登録は上書きとなる。
type StateTable struct {
	labels []string
	states map[string]AirState
}

func NewStateTable() *StateTable {
	return &StateTable{states: map[string]AirState{}}
}

func (t *StateTable) Add(label string, s AirState) {
	if _, ok := t.states[label]; !ok {
		t.labels = append(t.labels, label)
	}
	t.states[label] = s
}

func (t *StateTable) Get(label string) (AirState, bool) {
	s, ok := t.states[label]
	return s, ok
}

// 挿入順のラベル一覧
func (t *StateTable) Labels() []string {
	return append([]string{}, t.labels...)
}

func (t *StateTable) Len() int {
	return len(t.labels)
}
