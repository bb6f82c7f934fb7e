package i18n

var catalogs = map[string]map[string]string{
	"ko-KR": {
		"error.internal":                "요청 처리 중 오류가 발생했습니다",
		"error.request_invalid":         "요청 형식이 올바르지 않습니다",
		"error.unauthorized":            "로그인이 필요합니다",
		"error.forbidden":               "접근 권한이 없습니다",
		"error.auth_header_missing":     "인증 정보가 없습니다",
		"error.auth_header_invalid":     "인증 정보 형식이 올바르지 않습니다",
		"error.token_invalid":           "로그인 정보가 유효하지 않습니다",
		"error.token_expired":           "로그인이 만료되었습니다. 다시 로그인해 주세요",
		"error.jwt_secret_missing":      "인증 설정 오류입니다",
		"error.rate_limited":            "요청이 너무 많습니다. %d초 후 다시 시도해 주세요",
		"error.rate_limit_unavailable":  "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해 주세요",
		"error.config_fetch_failed":     "멤버십 정보를 불러오지 못했습니다",
		"error.membership_fetch_failed": "멤버십 정보를 불러오지 못했습니다",
		"error.coupon_fetch_failed":     "쿠폰 목록을 불러오지 못했습니다",
		"error.coupon_not_found":        "쿠폰을 찾을 수 없습니다",
		"error.coupon_code_required":    "쿠폰 코드를 입력해 주세요",
		"error.coupon_already_used":     "이미 사용된 쿠폰입니다",
		"error.coupon_expired":          "기간이 만료된 쿠폰입니다",
		"error.coupon_not_active":       "사용할 수 없는 쿠폰입니다",
		"error.coupon_use_failed":       "쿠폰 사용에 실패했습니다",
		"error.history_fetch_failed":    "사용 내역을 불러오지 못했습니다",
		"error.exchange_type_invalid":   "선택할 수 없는 쿠폰 종류입니다",
		"error.exchange_failed":         "쿠폰 교환에 실패했습니다",
		"error.stars_insufficient":      "별이 %d개 부족합니다",
		"error.gift_method_invalid":     "지원하지 않는 선물 방식입니다",
		"error.gift_recipient_required": "받는 분의 이메일을 입력해 주세요",
		"error.gift_failed":             "쿠폰 선물에 실패했습니다",
		"error.gift_link_create_failed": "선물 링크 생성에 실패했습니다",
		"error.gift_link_not_found":     "유효하지 않은 선물 링크입니다",
		"error.gift_link_fetch_failed":  "선물 정보를 불러오지 못했습니다",
		"error.claim_token_required":    "선물 링크가 올바르지 않습니다",
		"error.claim_failed":            "선물 받기에 실패했습니다",
		"error.captcha_required":        "보안 문자를 입력해 주세요",
		"error.captcha_invalid":         "보안 문자가 일치하지 않습니다",
		"error.captcha_generate_failed": "보안 문자 생성에 실패했습니다",
		"error.member_id_invalid":       "회원 정보가 올바르지 않습니다",
		"error.stars_invalid":           "적립 요청 값이 올바르지 않습니다",
		"error.star_source_invalid":     "별 적립 출처가 올바르지 않습니다",
		"error.accumulate_failed":       "별 적립에 실패했습니다",

		"msg.coupon_used":       "쿠폰을 사용했습니다",
		"msg.exchange_success":  "쿠폰 교환이 완료되었습니다",
		"msg.gift_sent":         "쿠폰을 선물했습니다",
		"msg.gift_link_created": "선물 링크가 생성되었습니다",
		"msg.gift_claimed":      "선물 쿠폰을 받았습니다",
		"msg.stars_accumulated": "별이 적립되었습니다",

		"coupon.status.active":  "사용 가능",
		"coupon.status.used":    "사용 완료",
		"coupon.status.expired": "기간 만료",

		"email.gift.subject":      "%s님이 쿠폰을 선물했습니다",
		"email.gift.body":         "%s님이 \"%s\" 쿠폰을 선물로 보냈습니다.\n\n%s\n\n아래 링크에서 선물을 받아 주세요:\n%s",
		"email.gift.body_no_link": "%s님이 \"%s\" 쿠폰을 선물로 보냈습니다.\n\n%s\n\n앱의 쿠폰함에서 확인해 주세요.",
	},
	"en-US": {
		"error.internal":                "Something went wrong while processing the request",
		"error.request_invalid":         "Invalid request format",
		"error.unauthorized":            "Sign-in required",
		"error.forbidden":               "You do not have access to this resource",
		"error.auth_header_missing":     "Missing authorization header",
		"error.auth_header_invalid":     "Invalid authorization header",
		"error.token_invalid":           "Invalid session token",
		"error.token_expired":           "Session expired, please sign in again",
		"error.jwt_secret_missing":      "Authentication is misconfigured",
		"error.rate_limited":            "Too many requests, retry in %d seconds",
		"error.rate_limit_unavailable":  "Temporary error, please retry shortly",
		"error.config_fetch_failed":     "Failed to load membership configuration",
		"error.membership_fetch_failed": "Failed to load membership",
		"error.coupon_fetch_failed":     "Failed to load coupons",
		"error.coupon_not_found":        "Coupon not found",
		"error.coupon_code_required":    "Coupon code is required",
		"error.coupon_already_used":     "This coupon has already been used",
		"error.coupon_expired":          "This coupon has expired",
		"error.coupon_not_active":       "This coupon cannot be used",
		"error.coupon_use_failed":       "Failed to use the coupon",
		"error.history_fetch_failed":    "Failed to load coupon history",
		"error.exchange_type_invalid":   "This coupon type cannot be selected",
		"error.exchange_failed":         "Coupon exchange failed",
		"error.stars_insufficient":      "You need %d more stars",
		"error.gift_method_invalid":     "Unsupported gift method",
		"error.gift_recipient_required": "Recipient email is required",
		"error.gift_failed":             "Failed to gift the coupon",
		"error.gift_link_create_failed": "Failed to create the gift link",
		"error.gift_link_not_found":     "Invalid gift link",
		"error.gift_link_fetch_failed":  "Failed to load the gift",
		"error.claim_token_required":    "Invalid gift link",
		"error.claim_failed":            "Failed to claim the gift",
		"error.captcha_required":        "Captcha is required",
		"error.captcha_invalid":         "Captcha does not match",
		"error.captcha_generate_failed": "Failed to generate captcha",
		"error.member_id_invalid":       "Invalid member",
		"error.stars_invalid":           "Invalid accumulation request",
		"error.star_source_invalid":     "Invalid star source",
		"error.accumulate_failed":       "Failed to accumulate stars",

		"msg.coupon_used":       "Coupon used",
		"msg.exchange_success":  "Coupon exchanged",
		"msg.gift_sent":         "Coupon gifted",
		"msg.gift_link_created": "Gift link created",
		"msg.gift_claimed":      "Gift claimed",
		"msg.stars_accumulated": "Stars accumulated",

		"coupon.status.active":  "Available",
		"coupon.status.used":    "Used",
		"coupon.status.expired": "Expired",

		"email.gift.subject":      "%s sent you a coupon",
		"email.gift.body":         "%s sent you the coupon \"%s\".\n\n%s\n\nClaim your gift here:\n%s",
		"email.gift.body_no_link": "%s sent you the coupon \"%s\".\n\n%s\n\nCheck your coupon box in the app.",
	},
	"zh-CN": {
		"error.internal":                "请求处理失败，请稍后重试",
		"error.request_invalid":         "请求格式不正确",
		"error.unauthorized":            "请先登录",
		"error.forbidden":               "没有访问权限",
		"error.auth_header_missing":     "缺少认证信息",
		"error.auth_header_invalid":     "认证信息格式不正确",
		"error.token_invalid":           "登录状态无效",
		"error.token_expired":           "登录已过期，请重新登录",
		"error.jwt_secret_missing":      "认证配置错误",
		"error.rate_limited":            "请求过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable":  "服务暂时不可用，请稍后重试",
		"error.config_fetch_failed":     "获取会员配置失败",
		"error.membership_fetch_failed": "获取会员信息失败",
		"error.coupon_fetch_failed":     "获取优惠券列表失败",
		"error.coupon_not_found":        "未找到该优惠券",
		"error.coupon_code_required":    "请输入券码",
		"error.coupon_already_used":     "该优惠券已被使用",
		"error.coupon_expired":          "该优惠券已过期",
		"error.coupon_not_active":       "该优惠券不可使用",
		"error.coupon_use_failed":       "优惠券使用失败",
		"error.history_fetch_failed":    "获取使用记录失败",
		"error.exchange_type_invalid":   "该券种不可选择",
		"error.exchange_failed":         "兑换失败",
		"error.stars_insufficient":      "还差 %d 颗星",
		"error.gift_method_invalid":     "不支持的赠送方式",
		"error.gift_recipient_required": "请输入收件人邮箱",
		"error.gift_failed":             "赠送失败",
		"error.gift_link_create_failed": "生成赠送链接失败",
		"error.gift_link_not_found":     "赠送链接无效",
		"error.gift_link_fetch_failed":  "获取赠送信息失败",
		"error.claim_token_required":    "赠送链接不正确",
		"error.claim_failed":            "领取失败",
		"error.captcha_required":        "请输入验证码",
		"error.captcha_invalid":         "验证码不正确",
		"error.captcha_generate_failed": "生成验证码失败",
		"error.member_id_invalid":       "会员信息不正确",
		"error.stars_invalid":           "积分请求参数不正确",
		"error.star_source_invalid":     "积分来源不正确",
		"error.accumulate_failed":       "积分累计失败",

		"msg.coupon_used":       "优惠券已使用",
		"msg.exchange_success":  "兑换完成",
		"msg.gift_sent":         "赠送成功",
		"msg.gift_link_created": "赠送链接已生成",
		"msg.gift_claimed":      "已领取赠送的优惠券",
		"msg.stars_accumulated": "积分已累计",

		"coupon.status.active":  "可使用",
		"coupon.status.used":    "已使用",
		"coupon.status.expired": "已过期",

		"email.gift.subject":      "%s 送给你一张优惠券",
		"email.gift.body":         "%s 送给你优惠券“%s”。\n\n%s\n\n通过以下链接领取：\n%s",
		"email.gift.body_no_link": "%s 送给你优惠券“%s”。\n\n%s\n\n请在应用的卡券夹中查看。",
	},
}
