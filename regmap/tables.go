package regmap

import "tivacode-go/mmio"

// Default aperture bases. Drivers take a base in their config and fall
// back to these, so tests can relocate a peripheral into simulated
// memory without colliding with anything else.
const (
	SysCtlBase = 0x400FE000

	// AHB aperture; one 0x1000 window per port A..F.
	GPIOPortAHBBase = 0x40058000

	ADC0Base = 0x40038000
	ADC1Base = 0x40039000

	QEI0Base = 0x4002C000
	QEI1Base = 0x4002D000

	// Cortex-M4 core peripheral aperture (MPU lives here).
	CorePeriphBase = 0xE000E000
)

// TimerBases maps block id 0..11 to its aperture: six 16/32-bit short
// timers followed by six 32/64-bit wide timers.
var TimerBases = [12]uint32{
	0x40030000, 0x40031000, 0x40032000, 0x40033000, 0x40034000, 0x40035000,
	0x40036000, 0x40037000, 0x4004C000, 0x4004D000, 0x4004E000, 0x4004F000,
}

var tables = map[Kind]map[string]Register{
	// System control: per-family present/reset/gating/ready registers,
	// one bit per physical instance.
	SysCtl: {
		"PPGPIO":   {0x308, mmio.RO},
		"SRGPIO":   {0x508, mmio.RW},
		"RCGCGPIO": {0x608, mmio.RW},
		"SCGCGPIO": {0x708, mmio.RW},
		"DCGCGPIO": {0x808, mmio.RW},
		"PRGPIO":   {0xA08, mmio.RO},

		"PPTIMER":   {0x304, mmio.RO},
		"SRTIMER":   {0x504, mmio.RW},
		"RCGCTIMER": {0x604, mmio.RW},
		"SCGCTIMER": {0x704, mmio.RW},
		"DCGCTIMER": {0x804, mmio.RW},
		"PRTIMER":   {0xA04, mmio.RO},

		"PPWTIMER":   {0x35C, mmio.RO},
		"SRWTIMER":   {0x55C, mmio.RW},
		"RCGCWTIMER": {0x65C, mmio.RW},
		"SCGCWTIMER": {0x75C, mmio.RW},
		"DCGCWTIMER": {0x85C, mmio.RW},
		"PRWTIMER":   {0xA5C, mmio.RO},

		"PPADC":   {0x338, mmio.RO},
		"SRADC":   {0x538, mmio.RW},
		"RCGCADC": {0x638, mmio.RW},
		"SCGCADC": {0x738, mmio.RW},
		"DCGCADC": {0x838, mmio.RW},
		"PRADC":   {0xA38, mmio.RO},

		"PPQEI":   {0x344, mmio.RO},
		"SRQEI":   {0x544, mmio.RW},
		"RCGCQEI": {0x644, mmio.RW},
		"SCGCQEI": {0x744, mmio.RW},
		"DCGCQEI": {0x844, mmio.RW},
		"PRQEI":   {0xA44, mmio.RO},
	},

	// GPIO port window. DATA sits at 0x3FC so that the address bus
	// masking exposes all eight data bits at once.
	GPIO: {
		"DATA":      {0x3FC, mmio.RW},
		"DIR":       {0x400, mmio.RW},
		"IS":        {0x404, mmio.RW},
		"IBE":       {0x408, mmio.RW},
		"IEV":       {0x40C, mmio.RW},
		"IM":        {0x410, mmio.RW},
		"RIS":       {0x414, mmio.RO},
		"MIS":       {0x418, mmio.RO},
		"ICR":       {0x41C, mmio.RW1C},
		"AFSEL":     {0x420, mmio.RW},
		"DR2R":      {0x500, mmio.RW},
		"DR4R":      {0x504, mmio.RW},
		"DR8R":      {0x508, mmio.RW},
		"ODR":       {0x50C, mmio.RW},
		"PUR":       {0x510, mmio.RW},
		"PDR":       {0x514, mmio.RW},
		"SLR":       {0x518, mmio.RW},
		"DEN":       {0x51C, mmio.RW},
		"LOCK":      {0x520, mmio.RW},
		"CR":        {0x524, mmio.RW},
		"AMSEL":     {0x528, mmio.RW},
		"PCTL":      {0x52C, mmio.RW},
		"ADCCTL":    {0x530, mmio.RW},
		"DMACTL":    {0x534, mmio.RW},
		"PeriphID4": {0xFD0, mmio.RO},
		"PeriphID5": {0xFD4, mmio.RO},
		"PeriphID6": {0xFD8, mmio.RO},
		"PeriphID7": {0xFDC, mmio.RO},
		"PeriphID0": {0xFE0, mmio.RO},
		"PeriphID1": {0xFE4, mmio.RO},
		"PeriphID2": {0xFE8, mmio.RO},
		"PeriphID3": {0xFEC, mmio.RO},
		"PCellID0":  {0xFF0, mmio.RO},
		"PCellID1":  {0xFF4, mmio.RO},
		"PCellID2":  {0xFF8, mmio.RO},
		"PCellID3":  {0xFFC, mmio.RO},
	},

	// General purpose timer block; identical layout for short and wide
	// blocks, the wide halves are simply 32 bits instead of 16.
	Timer: {
		"CFG":      {0x000, mmio.RW},
		"TAMR":     {0x004, mmio.RW},
		"TBMR":     {0x008, mmio.RW},
		"CTL":      {0x00C, mmio.RW},
		"SYNC":     {0x010, mmio.RW},
		"IMR":      {0x018, mmio.RW},
		"RIS":      {0x01C, mmio.RO},
		"MIS":      {0x020, mmio.RO},
		"ICR":      {0x024, mmio.RW1C},
		"TAILR":    {0x028, mmio.RW},
		"TBILR":    {0x02C, mmio.RW},
		"TAMATCHR": {0x030, mmio.RW},
		"TBMATCHR": {0x034, mmio.RW},
		"TAPR":     {0x038, mmio.RW},
		"TBPR":     {0x03C, mmio.RW},
		"TAPMR":    {0x040, mmio.RW},
		"TBPMR":    {0x044, mmio.RW},
		"TAR":      {0x048, mmio.RO},
		"TBR":      {0x04C, mmio.RO},
		"TAV":      {0x050, mmio.RW},
		"TBV":      {0x054, mmio.RW},
		"RTCPD":    {0x058, mmio.RO},
		"TAPS":     {0x05C, mmio.RO},
		"TBPS":     {0x060, mmio.RO},
		"TAPV":     {0x064, mmio.RO},
		"TBPV":     {0x068, mmio.RO},
		"PP":       {0xFC0, mmio.RO},
	},

	// ADC block (data only; both blocks share this layout).
	ADC: {
		"ACTSS":    {0x000, mmio.RW},
		"RIS":      {0x004, mmio.RO},
		"IM":       {0x008, mmio.RW},
		"ISC":      {0x00C, mmio.RW1C},
		"OSTAT":    {0x010, mmio.RW1C},
		"EMUX":     {0x014, mmio.RW},
		"USTAT":    {0x018, mmio.RW1C},
		"TSSEL":    {0x01C, mmio.RW},
		"SSPRI":    {0x020, mmio.RW},
		"SPC":      {0x024, mmio.RW},
		"PSSI":     {0x028, mmio.RW},
		"SAC":      {0x030, mmio.RW},
		"DCISC":    {0x034, mmio.RW1C},
		"CTL":      {0x038, mmio.RW},
		"SSMUX0":   {0x040, mmio.RW},
		"SSCTL0":   {0x044, mmio.RW},
		"SSFIFO0":  {0x048, mmio.RO},
		"SSFSTAT0": {0x04C, mmio.RO},
		"SSOP0":    {0x050, mmio.RW},
		"SSDC0":    {0x054, mmio.RW},
		"SSMUX1":   {0x060, mmio.RW},
		"SSCTL1":   {0x064, mmio.RW},
		"SSFIFO1":  {0x068, mmio.RO},
		"SSFSTAT1": {0x06C, mmio.RO},
		"SSOP1":    {0x070, mmio.RW},
		"SSDC1":    {0x074, mmio.RW},
		"SSMUX2":   {0x080, mmio.RW},
		"SSCTL2":   {0x084, mmio.RW},
		"SSFIFO2":  {0x088, mmio.RO},
		"SSFSTAT2": {0x08C, mmio.RO},
		"SSOP2":    {0x090, mmio.RW},
		"SSDC2":    {0x094, mmio.RW},
		"SSMUX3":   {0x0A0, mmio.RW},
		"SSCTL3":   {0x0A4, mmio.RW},
		"SSFIFO3":  {0x0A8, mmio.RO},
		"SSFSTAT3": {0x0AC, mmio.RO},
		"SSOP3":    {0x0B0, mmio.RW},
		"SSDC3":    {0x0B4, mmio.RW},
		"DCRIC":    {0xD00, mmio.WO},
		"DCCTL0":   {0xE00, mmio.RW},
		"DCCTL1":   {0xE04, mmio.RW},
		"DCCTL2":   {0xE08, mmio.RW},
		"DCCTL3":   {0xE0C, mmio.RW},
		"DCCTL4":   {0xE10, mmio.RW},
		"DCCTL5":   {0xE14, mmio.RW},
		"DCCTL6":   {0xE18, mmio.RW},
		"DCCTL7":   {0xE1C, mmio.RW},
		"DCCMP0":   {0xE40, mmio.RW},
		"DCCMP1":   {0xE44, mmio.RW},
		"DCCMP2":   {0xE48, mmio.RW},
		"DCCMP3":   {0xE4C, mmio.RW},
		"DCCMP4":   {0xE50, mmio.RW},
		"DCCMP5":   {0xE54, mmio.RW},
		"DCCMP6":   {0xE58, mmio.RW},
		"DCCMP7":   {0xE5C, mmio.RW},
		"PP":       {0xFC0, mmio.RO},
		"PC":       {0xFC4, mmio.RW},
		"CC":       {0xFC8, mmio.RW},
	},

	// QEI block (data only; the vendor map for the block registers).
	QEI: {
		"CTL":    {0x000, mmio.RW},
		"STAT":   {0x004, mmio.RO},
		"POS":    {0x008, mmio.RW},
		"MAXPOS": {0x00C, mmio.RW},
		"LOAD":   {0x010, mmio.RW},
		"TIME":   {0x014, mmio.RO},
		"COUNT":  {0x018, mmio.RO},
		"SPEED":  {0x01C, mmio.RO},
		"INTEN":  {0x020, mmio.RW},
		"RIS":    {0x024, mmio.RO},
		"ISC":    {0x028, mmio.RW1C},
	},

	// Cortex-M4 MPU (data only), offsets relative to the core
	// peripheral aperture.
	MPU: {
		"TYPE":   {0xD90, mmio.RO},
		"CTRL":   {0xD94, mmio.RW},
		"NUMBER": {0xD98, mmio.RW},
		"BASE":   {0xD9C, mmio.RW},
		"ATTR":   {0xDA0, mmio.RW},
		"BASE1":  {0xDA4, mmio.RW},
		"ATTR1":  {0xDA8, mmio.RW},
		"BASE2":  {0xDAC, mmio.RW},
		"ATTR2":  {0xDB0, mmio.RW},
	},
}
